package codegen

import "github.com/goliatone/go-formforge/pkg/naming"

// TabID identifies one generated artifact.
type TabID string

const (
	TabModel    TabID = "model"
	TabForm     TabID = "form"
	TabTemplate TabID = "template"
)

// Tab is a labelled, named view over one artifact, suitable for copyable
// panes in a UI or for writing to disk.
type Tab struct {
	ID       TabID  `json:"id"`
	Label    string `json:"label"`
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

// Tabs lays out the artifact as model, form, template tabs.
func Tabs(artifact Artifact, opts Options) []Tab {
	model := naming.FileStem(opts.ModelName)
	form := naming.FileStem(opts.FormName)
	return []Tab{
		{ID: TabModel, Label: "Model.ts", FileName: model + ".model.ts", Content: artifact.ModelFile},
		{ID: TabForm, Label: "Form.ts", FileName: form + ".ts", Content: artifact.FormFile},
		{ID: TabTemplate, Label: "Template.html", FileName: form + ".component.html", Content: artifact.TemplateFile},
	}
}
