package proposal

import (
	"bytes"
	"text/template"

	"dao/core"

	"github.com/shopspring/decimal"
)

const reportTpl = `# {{.Name}}

Current Treasury Balance: ${{.Treasury}}

## Proposals
{{range .Proposals}}
### #{{.ID}} {{.Title}}

Description: {{.Description}}

Status: {{.Status}}

Votes: Yes - {{.YesCount}}, No - {{.NoCount}}
{{else}}
No proposals available to vote on currently.
{{end}}`

var reportTemplate = template.Must(template.New("report").Parse(reportTpl))

type report struct {
	Name      string
	Treasury  decimal.Decimal
	Proposals []*core.Proposal
}

// Render render the treasury and proposals as markdown, statuses are shown as stored
func Render(name string, treasury decimal.Decimal, proposals []*core.Proposal) ([]byte, error) {
	var b bytes.Buffer
	if err := reportTemplate.Execute(&b, report{
		Name:      name,
		Treasury:  treasury,
		Proposals: proposals,
	}); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
