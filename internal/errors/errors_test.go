package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderPreservesErrorChain(t *testing.T) {
	base := NewStd("disk I/O error")
	enhanced := New(base).
		Component("datastore").
		Category(CategoryDatabase).
		Priority(PriorityCritical).
		Context("operation", "save_text_entry").
		Build()

	assert.Equal(t, "disk I/O error", enhanced.Error())
	assert.True(t, Is(enhanced, base), "wrapping must keep the sentinel reachable")
	assert.Equal(t, base, Unwrap(enhanced))

	var ee *EnhancedError
	require.True(t, As(enhanced, &ee))
	assert.Equal(t, "datastore", ee.Component)
	assert.Equal(t, PriorityCritical, ee.Priority)
	assert.Equal(t, "save_text_entry", ee.GetContext()["operation"])
}

func TestBuilderDefaults(t *testing.T) {
	ee := New(NewStd("plain failure")).Build()
	assert.Equal(t, ComponentUnknown, ee.Component)
	assert.Equal(t, CategoryGeneric, ee.Category)
}

func TestCategoryPredicates(t *testing.T) {
	notFound := Newf("entry %d not found", 7).Category(CategoryNotFound).Build()
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsValidation(notFound))
	assert.True(t, IsCategory(notFound, CategoryNotFound))

	validation := ValidationError("entry content is empty")
	assert.True(t, IsValidation(validation))
	assert.False(t, IsNotFound(validation))

	assert.False(t, IsCategory(NewStd("bare"), CategoryDatabase))
	assert.False(t, IsCategory(nil, CategoryDatabase))
}
