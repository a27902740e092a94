package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagValueString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("hello", StringTag("hello").String())
	assert.Equal("true", BoolTag(true).String())
	assert.Equal("false", BoolTag(false).String())
	assert.Equal("42", IntTag(42).String())
	assert.Equal("1.5", FloatTag(1.5).String())
}

func TestTagsAccess(t *testing.T) {
	assert := assert.New(t)

	tags := Tags{
		"hostname": StringTag("node-1"),
		"port":     IntTag(8080),
	}
	assert.Equal("node-1", tags.GetString("hostname"))
	assert.Equal("8080", tags.GetString("port"))
	assert.Equal("", tags.GetString("missing"))
	assert.True(tags.Has("hostname"))
	assert.False(tags.Has("missing"))

	var nilTags Tags
	assert.Equal("", nilTags.GetString("any"))
}
