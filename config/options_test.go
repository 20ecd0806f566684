package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	assert := assert.New(t)

	var pages uint
	var trace bool
	opts := NewOptions("CPU options")
	opts.Uint("pagesize", "address spacing", &pages, 4096)
	opts.Bool("trace", "trace instructions", &trace, false)

	assert.Equal(uint(4096), pages)
	assert.False(trace)
	assert.NoError(opts.Apply(nil))
	assert.Equal(uint(4096), pages)
}

func TestOptions_Apply(t *testing.T) {
	assert := assert.New(t)

	var pages uint
	var trace bool
	var tag string
	opts := NewOptions("test")
	opts.Uint("pagesize", "", &pages, 0)
	opts.Bool("trace", "", &trace, false)
	opts.String("tag", "", &tag, "")

	err := opts.Apply([]Option{
		{Name: "pagesize", Kind: ValueNumber, Num: 512},
		{Name: "trace"},
		{Name: "tag", Kind: ValueString, Word: "main"},
	})
	assert.NoError(err)
	assert.Equal(uint(512), pages)
	assert.True(trace)
	assert.Equal("main", tag)
}

func TestOptions_Unknown(t *testing.T) {
	assert := assert.New(t)

	opts := NewOptions("test")
	err := opts.Apply([]Option{{Name: "bogus"}})
	assert.Error(err)
	assert.Equal(ErrUnknownOption("bogus"), err)
}

func TestOptions_BadValue(t *testing.T) {
	assert := assert.New(t)

	var pages uint
	opts := NewOptions("test")
	opts.Uint("pagesize", "", &pages, 0)
	err := opts.Apply([]Option{{Name: "pagesize", Kind: ValueString, Word: "big"}})
	assert.Error(err)
	assert.IsType(ErrBadOption{}, err)
}

func TestOptions_BoolWords(t *testing.T) {
	assert := assert.New(t)

	var flag bool
	opts := NewOptions("test")
	opts.Bool("flag", "", &flag, false)

	assert.NoError(opts.Apply([]Option{{Name: "flag", Kind: ValueWord, Word: "on"}}))
	assert.True(flag)
	assert.NoError(opts.Apply([]Option{{Name: "flag", Kind: ValueWord, Word: "off"}}))
	assert.False(flag)
}

func TestOptions_Parse(t *testing.T) {
	assert := assert.New(t)

	var pages uint
	var trace bool
	opts := NewOptions("test")
	opts.Uint("pagesize", "", &pages, 0)
	opts.Bool("trace", "", &trace, false)

	lx := NewLexerString("(pagesize = 4k, trace)")
	assert.NoError(lx.Advance())
	assert.Equal(TokenLparen, lx.Token())
	assert.NoError(opts.Parse(lx))
	assert.Equal(uint(4096), pages)
	assert.True(trace)
}

func TestParseOptionList_Empty(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexerString("()")
	assert.NoError(lx.Advance())
	opts, err := ParseOptionList(lx)
	assert.NoError(err)
	assert.Empty(opts)
}

func TestParseOptionList_Values(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexerString(`(a, b = 3, c = name, d = "text")`)
	assert.NoError(lx.Advance())
	opts, err := ParseOptionList(lx)
	assert.NoError(err)
	assert.Equal([]Option{
		{Name: "a"},
		{Name: "b", Kind: ValueNumber, Num: 3},
		{Name: "c", Kind: ValueWord, Word: "name"},
		{Name: "d", Kind: ValueString, Word: "text"},
	}, opts)
}

func TestParseOptionList_Unterminated(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexerString("(a b)")
	assert.NoError(lx.Advance())
	_, err := ParseOptionList(lx)
	assert.Error(err)
}
