package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskLiteral(t *testing.T) {
	swapStdin(t, "YES\n")
	assert.True(t, askLiteral(nil, "continue? ", "YES"))
}

func TestAskLiteralRejectsAnythingElse(t *testing.T) {
	for _, input := range []string{"yes\n", "Y\n", "\n", "YES!\n"} {
		t.Run(input, func(t *testing.T) {
			swapStdin(t, input)
			assert.False(t, askLiteral(nil, "continue? ", "YES"))
		})
	}
}

func TestAskLiteralEOFDeclines(t *testing.T) {
	swapStdin(t, "")
	assert.False(t, askLiteral(nil, "continue? ", "YES"))
}

func TestAskEnterOrCancel(t *testing.T) {
	swapStdin(t, "\n")
	assert.True(t, askEnterOrCancel(nil, "go on? "))

	swapStdin(t, "cancel\n")
	assert.False(t, askEnterOrCancel(nil, "go on? "))

	swapStdin(t, "CANCEL\n")
	assert.False(t, askEnterOrCancel(nil, "go on? "))

	// Invalid input re-asks until something usable arrives.
	swapStdin(t, "what\ncancel\n")
	assert.False(t, askEnterOrCancel(nil, "go on? "))
}
