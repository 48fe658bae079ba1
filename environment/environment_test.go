/*
File    : goloxmix/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/goloxmix/value"
)

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", value.Number(1))
	v, err := env.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGetUndefined(t *testing.T) {
	env := New()
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestAssignNeverCreatesBinding(t *testing.T) {
	env := New()
	err := env.Assign("missing", value.Number(1))
	assert.Error(t, err)
}

func TestEnclosedScopeSeesParent(t *testing.T) {
	parent := New()
	parent.Define("x", value.Number(1))
	child := NewEnclosed(parent)
	v, err := child.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestEnclosedScopeShadowing(t *testing.T) {
	parent := New()
	parent.Define("x", value.Number(1))
	child := NewEnclosed(parent)
	child.Define("x", value.Number(2))

	childVal, err := child.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(2), childVal)

	parentVal, err := parent.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), parentVal)
}

func TestAssignMutatesNearestBinding(t *testing.T) {
	parent := New()
	parent.Define("x", value.Number(1))
	child := NewEnclosed(parent)

	err := child.Assign("x", value.Number(99))
	assert.NoError(t, err)

	v, err := parent.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(99), v)
}
