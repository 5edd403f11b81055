package selfheal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dappsmith/conductor/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "selector failure",
			text: "Error: waiting for selector \"#swap-button\" failed",
			want: models.FailureSelector,
		},
		{
			name: "selector wins over timeout",
			text: "Timeout 30000ms exceeded waiting for selector \"#connect\"",
			want: models.FailureSelector,
		},
		{
			name: "bare timeout",
			text: "Timeout 30000ms exceeded",
			want: models.FailureTimeout,
		},
		{
			name: "wallet rejection",
			text: "Error: user rejected the request in MetaMask",
			want: models.FailureWallet,
		},
		{
			name: "wallet wins over selector",
			text: "waiting for selector failed: wallet popup never appeared",
			want: models.FailureWallet,
		},
		{
			name: "assertion",
			text: "expect(received).toHaveText(expected)\nReceived: \"0.0\"",
			want: models.FailureAssertion,
		},
		{
			name: "network",
			text: "page.goto: net::ERR_CONNECTION_REFUSED at https://dapp.test",
			want: models.FailureNetwork,
		},
		{
			name: "case insensitive",
			text: "WAITING FOR SELECTOR",
			want: models.FailureSelector,
		},
		{
			name: "unknown",
			text: "something completely different happened",
			want: models.FailureUnknown,
		},
		{
			name: "empty",
			text: "",
			want: models.FailureUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestMatchedHints(t *testing.T) {
	hints := matchedHints("Timeout 30000ms exceeded waiting for selector \"#x\"")
	assert.Contains(t, hints, "selector")
	assert.Contains(t, hints, "timeout")
	assert.Contains(t, hints, "exceeded")

	assert.Empty(t, matchedHints("nothing recognizable"))
}
