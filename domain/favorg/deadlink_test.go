package favorg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusActive, Classify(200, nil))
	assert.Equal(t, StatusActive, Classify(301, nil))
	assert.Equal(t, StatusDead, Classify(404, nil))
	assert.Equal(t, StatusDead, Classify(500, nil))
	assert.Equal(t, StatusDead, Classify(0, errors.New("connection refused")))
	assert.Equal(t, StatusTimeout, Classify(0, timeoutErr{}))
}
