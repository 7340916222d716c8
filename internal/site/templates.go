package site

// pageTemplate is the Go html/template for the documentation page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css">
  <link rel="stylesheet" href="style.css">
</head>
<body{{if .LiveReload}} data-live-reload="true"{{end}}>
  <div class="container-fluid">
    <div class="row">
      <nav class="col-md-3 sidebar" id="sidebar">
        <h2 class="project-title">{{.Title}}</h2>
        <p class="text-muted small">{{.Packages}} packages, {{.Stats.Functions}} functions</p>
        <div class="sidebar-tree">
          {{.Nav}}
        </div>
      </nav>
      <main class="col-md-9 content">
        <div id="api">
          {{.Content}}
        </div>
      </main>
    </div>
  </div>
  <script src="https://cdn.jsdelivr.net/npm/jquery@3.5.1/dist/jquery.min.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/js/bootstrap.bundle.min.js"></script>
  <script src="script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the documentation page. Layout comes
// from Bootstrap; this only adjusts cards and the sidebar.
const cssContent = `:root {
  --accent: #228be6;
  --border: #dee2e6;
  --code-bg: #f1f3f5;
}

body {
  font-size: 15px;
}

.sidebar {
  position: sticky;
  top: 0;
  height: 100vh;
  overflow-y: auto;
  padding: 1.5rem 1rem;
  border-right: 1px solid var(--border);
  background: #f8f9fa;
}

.sidebar .project-title {
  font-size: 1.25rem;
  font-weight: 600;
}

.sidebar-tree ul {
  list-style: none;
  padding-left: 0.9rem;
  margin: 0;
}

.sidebar-tree > ul {
  padding-left: 0;
}

.sidebar-tree li.leaf > span {
  color: #868e96;
}

.content {
  padding: 1.5rem 2rem;
}

.card {
  margin: 0.5rem 0;
  width: 100%;
}

.card-header {
  font-size: 1.1rem;
  display: flex;
  align-items: center;
  justify-content: space-between;
}

.api-name {
  font-family: SFMono-Regular, Menlo, Monaco, Consolas, monospace;
}

.card-text pre,
.function-list pre {
  background: var(--code-bg);
  padding: 0.5rem 0.75rem;
  border-radius: 4px;
}

.collapse.px-2 {
  margin: 0;
}
`

// jsContent keeps each toggle control's label in step with its section.
// Labels are set from the transition that Bootstrap reports, so they always
// describe the state the section is moving into.
const jsContent = `(function ($) {
  'use strict';

  var LABEL_SHOW = 'Show API';
  var LABEL_HIDE = 'Hide API';

  function controlsFor(id) {
    return $('[data-toggle="collapse"][data-target="#' + id + '"]');
  }

  $(function () {
    var $api = $('#api');

    $api.on('show.bs.collapse hide.bs.collapse', '.collapse', function (e) {
      if (e.target !== this) {
        return;
      }
      var shown = e.type === 'show';
      controlsFor(this.id)
        .text(shown ? LABEL_HIDE : LABEL_SHOW)
        .attr('aria-expanded', shown ? 'true' : 'false');
    });

    $('#sidebar').on('click', 'a[data-section]', function () {
      var $section = $('#' + $(this).data('section'));
      $section.parents('.collapse').addBack().not('.show').collapse('show');
    });

    if (document.body.dataset.liveReload && window.WebSocket) {
      var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
      var ws = new WebSocket(scheme + location.host + '/ws/reload');
      ws.onmessage = function (msg) {
        if (msg.data === 'reload') {
          location.reload();
        }
      };
    }
  });
})(jQuery);
`
