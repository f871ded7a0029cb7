package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
)

func TestDefaultConfigYAML_ParsesAndMatchesDefaults(t *testing.T) {
	cfg, err := config.FromYAML([]byte(defaultConfigYAML()))
	require.NoError(t, err)

	def := config.Default()
	assert.Equal(t, def.Output, cfg.Output)
	assert.Equal(t, def.DelayMs, cfg.DelayMs)
	assert.Equal(t, def.MaxDepth, cfg.MaxDepth)
	assert.Equal(t, def.Concurrency, cfg.Concurrency)
	assert.Equal(t, def.Target, cfg.Target)
	assert.Equal(t, def.Scope, cfg.Scope)
	assert.Empty(t, cfg.Rules)
}

func TestInteractiveInit(t *testing.T) {
	// Claude Code target, user scope, custom delay, defaults for the rest.
	in := strings.NewReader("3\n2\n250\n\n\n")
	var out bytes.Buffer

	content, err := interactiveInit(in, &out)
	require.NoError(t, err)

	cfg, err := config.FromYAML([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, config.TargetClaudeCode, cfg.Target)
	assert.Equal(t, config.ScopeUser, cfg.Scope)
	assert.Equal(t, 250, cfg.DelayMs)
	assert.Equal(t, config.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, config.DefaultConcurrency, cfg.Concurrency)
}

func TestInteractiveInit_CustomTargetAsksForOutput(t *testing.T) {
	in := strings.NewReader("1\n1\n./my-skills\n\n\n\n")
	var out bytes.Buffer

	content, err := interactiveInit(in, &out)
	require.NoError(t, err)

	cfg, err := config.FromYAML([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, config.TargetCustom, cfg.Target)
	assert.Equal(t, "./my-skills", cfg.Output)
}

func TestInteractiveInit_InvalidInputFallsBackToDefaults(t *testing.T) {
	in := strings.NewReader("99\nnope\nabc\n-5\n0\n")
	var out bytes.Buffer

	content, err := interactiveInit(in, &out)
	require.NoError(t, err)

	cfg, err := config.FromYAML([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, config.TargetCustom, cfg.Target)
	assert.Equal(t, config.ScopeProject, cfg.Scope)
	assert.Equal(t, config.DefaultDelayMs, cfg.DelayMs)
	assert.Equal(t, config.DefaultConcurrency, cfg.Concurrency)
}
