package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPublishIdempotencyKey(t *testing.T) {
	assert.Equal(t, "op-1:retry-42", BuildPublishIdempotencyKey("op-1", "retry-42"))
	assert.NotEqual(t,
		BuildPublishIdempotencyKey("op-1", "k"),
		BuildPublishIdempotencyKey("op-2", "k"),
		"keys are scoped per operator")
}
