package report

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSARIF(t *testing.T) {
	data, err := GenerateSARIF("/project", sampleResults())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2.1.0", doc["version"])
	assert.Contains(t, doc["$schema"], "sarif-2.1.0")

	runs := doc["runs"].([]any)
	require.Len(t, runs, 1)
	run := runs[0].(map[string]any)

	driver := run["tool"].(map[string]any)["driver"].(map[string]any)
	assert.Equal(t, "hooklint", driver["name"])
	rules := driver["rules"].([]any)
	require.Len(t, rules, 1)
	assert.Equal(t, "HOOK001", rules[0].(map[string]any)["id"])

	guid := run["automationDetails"].(map[string]any)["guid"].(string)
	_, err = uuid.Parse(guid)
	assert.NoError(t, err, "automationDetails.guid must be a valid uuid")

	results := run["results"].([]any)
	require.Len(t, results, 1)
	result := results[0].(map[string]any)
	assert.Equal(t, "HOOK001", result["ruleId"])
	assert.Equal(t, "warning", result["level"])

	locations := result["locations"].([]any)
	require.Len(t, locations, 1)
	phys := locations[0].(map[string]any)["physicalLocation"].(map[string]any)
	assert.Equal(t, "src/App.jsx", phys["artifactLocation"].(map[string]any)["uri"])
	region := phys["region"].(map[string]any)
	assert.Equal(t, float64(4), region["startLine"])
	assert.Equal(t, float64(9), region["startColumn"])

	fixes := result["fixes"].([]any)
	require.Len(t, fixes, 2)

	first := fixes[0].(map[string]any)
	assert.Equal(t, "Replace useState call with useMemo",
		first["description"].(map[string]any)["text"])
	changes := first["artifactChanges"].([]any)
	require.Len(t, changes, 1)
	replacements := changes[0].(map[string]any)["replacements"].([]any)
	require.Len(t, replacements, 2)
	deleted := replacements[0].(map[string]any)["deletedRegion"].(map[string]any)
	assert.Equal(t, float64(29), deleted["charOffset"])
	assert.Equal(t, float64(8), deleted["charLength"])
	assert.Equal(t, ", useMemo",
		replacements[0].(map[string]any)["insertedContent"].(map[string]any)["text"])

	second := fixes[1].(map[string]any)
	_, hasDescription := second["description"]
	assert.False(t, hasDescription, "unlabeled rename fix carries no description")
}

func TestGenerateSARIFEmpty(t *testing.T) {
	data, err := GenerateSARIF("/project", nil)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	run := doc["runs"].([]any)[0].(map[string]any)
	assert.Empty(t, run["results"])
}

func TestRelativeURI(t *testing.T) {
	assert.Equal(t, "src/App.jsx", relativeURI("/project", "/project/src/App.jsx"))
	assert.Equal(t, "src/App.jsx", relativeURI("", "src/App.jsx"))
	assert.Equal(t, "src/App.jsx", relativeURI("/elsewhere", "src/App.jsx"))
}
