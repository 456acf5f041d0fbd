package enum

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type choices struct{}

func (choices) Choices() []string {
	return []string{
		choiceA: "apple",
		choiceB: "banana",
		choiceC: "cherry",
	}
}

type choice = Enum[choices]

const (
	choiceA choice = iota
	choiceB
	choiceC
)

type typedChoices struct{ choices }

func (typedChoices) Type() string { return "Fruit" }

var _ pflag.Value = (*choice)(nil)

func TestEnumString(t *testing.T) {
	assert.Equal(t, "apple", choiceA.String())
	assert.Equal(t, "cherry", choiceC.String())
	assert.Equal(t, "Unknown(9)", choice(9).String())
	assert.Equal(t, "apple, banana, cherry", choiceA.Help())
	assert.Equal(t, "apple|banana|cherry", choiceA.Type())
	assert.Equal(t, "Fruit", Enum[typedChoices](0).Type())
}

func TestEnumSet(t *testing.T) {
	var e choice
	require.NoError(t, e.Set("BANANA"))
	assert.Equal(t, choiceB, e)
	err := e.Set("kiwi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid choice "kiwi"`)
	assert.Equal(t, choiceB, e)
}

func TestEnumScan(t *testing.T) {
	var e choice
	_, err := fmt.Sscan("cherry", &e)
	require.NoError(t, err)
	assert.Equal(t, choiceC, e)
}

func TestEnumJSON(t *testing.T) {
	out, err := json.Marshal(choiceB)
	require.NoError(t, err)
	assert.Equal(t, `"banana"`, string(out))

	var e choice
	require.NoError(t, json.Unmarshal([]byte(`"cherry"`), &e))
	assert.Equal(t, choiceC, e)
	require.NoError(t, json.Unmarshal([]byte(`0`), &e))
	assert.Equal(t, choiceA, e)
	assert.Error(t, json.Unmarshal([]byte(`3`), &e))
	assert.Error(t, json.Unmarshal([]byte(`true`), &e))
}

func TestEnumYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]choice{"fruit": choiceC})
	require.NoError(t, err)
	assert.Equal(t, "fruit: cherry\n", string(out))
}

func TestEnumFlag(t *testing.T) {
	e := choiceA
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&e, "fruit", "Fruit")
	require.NoError(t, fs.Parse([]string{"--fruit", "banana"}))
	assert.Equal(t, choiceB, e)
}
