package masks

// Preset is a named wildcard offered as a filter shortcut.
type Preset struct {
	Name     string
	Wildcard string
}

func BuiltInPresets() []Preset {
	return []Preset{
		{Name: "Coding", Wildcard: "*.go, *.cpp, *.cs, *.js, *.ts, *.py"},
		{Name: "Data", Wildcard: "*.csv, *.dbf, *.json, *.xml, *.yaml"},
		{Name: "Images", Wildcard: "*.png, *.jpg, *.jpeg, *.gif, *.bmp, *.webp"},
		{Name: "Documents", Wildcard: "*.txt, *.md, *.pdf, *.doc, *.docx, *.odt"},
	}
}
