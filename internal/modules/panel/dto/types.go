package dto

type ButtonOutput struct {
	ID    int
	Value int
	Armed bool
	Phase string
}

type SectionOutput struct {
	Key     string
	Name    string
	Buttons []ButtonOutput
}

type SectionSeed struct {
	Name    string
	Buttons int
}

type GenerateInput struct {
	SectionKey string
	Count      string
}

type AddSectionInput struct {
	Name  string
	Count string
}

type ActivateInput struct {
	SectionKey string
	ButtonID   int
}

type ActivateOutput struct {
	Button  ButtonOutput
	Command string
}
