package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalyzeRequest
		wantErr bool
	}{
		{name: "text only", req: AnalyzeRequest{Text: "hello"}},
		{name: "subject and text", req: AnalyzeRequest{Subject: "Hi", Text: "hello"}},
		{name: "empty text", req: AnalyzeRequest{Subject: "Hi"}, wantErr: true},
		{name: "blank text", req: AnalyzeRequest{Text: " \n\t"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTextRequired)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSummaryRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SummaryRequest{}).Validate())
	assert.NoError(t, (&SummaryRequest{Days: 30}).Validate())
	assert.Error(t, (&SummaryRequest{Days: -1}).Validate())
	assert.Error(t, (&SummaryRequest{Days: 400}).Validate())
}
