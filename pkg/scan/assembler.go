package scan

import (
	"github.com/codedx/twistlock2codedx/pkg/codedx"
)

// Assembler collects the findings of all converted files in the order they are added.
type Assembler struct {
	findings []codedx.Finding
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

func (a *Assembler) Add(findings ...codedx.Finding) {
	a.findings = append(a.findings, findings...)
}

func (a *Assembler) Len() int {
	return len(a.findings)
}

func (a *Assembler) Findings() []codedx.Finding {
	return a.findings
}
