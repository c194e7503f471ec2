package registry

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoprobe/autoprobe/internal/config"
)

func TestRegisterCheck_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterCheck("header", &RegisteredCheck{})

	assert.Panics(t, func() {
		r.RegisterCheck("header", &RegisteredCheck{})
	})
}

func TestValidate_UnknownKindIsRejected(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterCheck("header", &RegisteredCheck{})

	model := &config.Model{Checks: []*config.Check{
		{Kind: "header", Name: "stdio"},
		{Kind: "typo_kind", Name: "x", Range: hcl.Range{Filename: "suite.hcl"}},
	}}

	err := r.Validate(model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typo_kind")
	assert.Contains(t, err.Error(), "suite.hcl")
}

func TestValidate_AllKindsKnown(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterCheck("header", &RegisteredCheck{})

	model := &config.Model{Checks: []*config.Check{{Kind: "header", Name: "stdio"}}}
	require.NoError(t, r.Validate(model))
}
