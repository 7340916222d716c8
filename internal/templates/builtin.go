package templates

// builtin holds the default html/template source for each required template.
var builtin = map[string]string{
	Card:         cardTemplate,
	Toggle:       toggleTemplate,
	Constructor:  constructorTemplate,
	EnumList:     enumListTemplate,
	FunctionList: functionListTemplate,
}

const cardTemplate = `<div class="row card bg-light mb-3">
  <h3 class="card-header">{{.Header}}</h3>
  <div class="card-body">
    {{- with .Title}}
    <h4 class="card-title">{{.}}</h4>
    {{- end}}
    {{- with .Text}}
    <div class="card-text">{{markdown .}}</div>
    {{- end}}
    {{- with .Body}}
    {{.}}
    {{- end}}
  </div>
</div>
`

const toggleTemplate = `<span class="api-name">{{.Header}}</span>
<button type="button" class="btn btn-sm btn-outline-secondary float-right" data-toggle="collapse" data-target="#{{.Target}}" aria-controls="{{.Target}}" aria-expanded="false">Show API</button>`

const constructorTemplate = `<div class="api-constructor">
  <h5>Constructor</h5>
  <p><code>{{.Def}}</code></p>
  {{- range .Info}}
  <p class="constructor-info">{{.}}</p>
  {{- end}}
</div>
`

const enumListTemplate = `<div class="api-enum">
  <h5>Values</h5>
  <ul class="list-unstyled">
    {{- range .Enum}}
    <li><code>{{.Name}}</code>{{range .Info}} <span class="enum-info">{{.}}</span>{{end}}</li>
    {{- end}}
  </ul>
</div>
`

const functionListTemplate = `<div class="api-functions">
  <h5>Functions</h5>
  {{- range .Functions}}
  <div class="api-function">
    <h6 class="function-signature"><code>{{.Signature}}</code></h6>
    {{- with .Descriptor}}
    {{- if .Return.Type}}
    <p class="function-return">Returns <code>{{.Return.Type}}</code>{{range .Return.Info}} {{.}}{{end}}</p>
    {{- end}}
    {{- range .Description}}
    <p class="function-desc">{{.}}</p>
    {{- end}}
    {{- end}}
  </div>
  {{- end}}
</div>
`
