package mock

import (
	"github.com/codedx/twistlock2codedx/pkg/codedx"
	"github.com/codedx/twistlock2codedx/pkg/scan"
	"github.com/codedx/twistlock2codedx/pkg/twistlock"
	"github.com/stretchr/testify/mock"
)

type Transformer struct {
	mock.Mock
}

func NewTransformer() *Transformer {
	return &Transformer{}
}

func (t *Transformer) Transform(schema twistlock.Schema, rows scan.RowSource) ([]codedx.Finding, error) {
	args := t.Called(schema, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]codedx.Finding), args.Error(1)
}

func (t *Transformer) Report(findings []codedx.Finding) codedx.Report {
	args := t.Called(findings)
	return args.Get(0).(codedx.Report)
}
