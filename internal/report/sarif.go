package report

import (
	"encoding/json"
	"path/filepath"

	"github.com/google/uuid"

	"hooklint/internal/engine/hookstate"
)

// SARIF v2.1.0 schema – see https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json

const (
	sarifSchema  = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
	sarifVersion = "2.1.0"

	ruleIDStatePair = "HOOK001"

	toolName    = "hooklint"
	toolVersion = "1.0.0"
)

type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool              sarifTool              `json:"tool"`
	AutomationDetails sarifAutomationDetails `json:"automationDetails"`
	Results           []sarifResult          `json:"results"`
}

type sarifAutomationDetails struct {
	GUID string `json:"guid"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	ShortDescription sarifMessage           `json:"shortDescription"`
	DefaultConfig    sarifRuleDefaultConfig `json:"defaultConfiguration"`
}

type sarifRuleDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
	Fixes     []sarifFix      `json:"fixes,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI       string `json:"uri"`
	URIBaseID string `json:"uriBaseId,omitempty"`
}

type sarifRegion struct {
	StartLine   int  `json:"startLine,omitempty"`
	StartColumn int  `json:"startColumn,omitempty"`
	CharOffset  *int `json:"charOffset,omitempty"`
	CharLength  *int `json:"charLength,omitempty"`
}

type sarifFix struct {
	Description     *sarifMessage         `json:"description,omitempty"`
	ArtifactChanges []sarifArtifactChange `json:"artifactChanges"`
}

type sarifArtifactChange struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Replacements     []sarifReplacement    `json:"replacements"`
}

type sarifReplacement struct {
	DeletedRegion   sarifRegion  `json:"deletedRegion"`
	InsertedContent sarifMessage `json:"insertedContent"`
}

// GenerateSARIF builds a SARIF v2.1.0 document from the analysis results.
// File URIs are made relative to projectRoot so reports are safe to share.
func GenerateSARIF(projectRoot string, results []FileResult) ([]byte, error) {
	sarifResults := make([]sarifResult, 0)

	for _, res := range results {
		uri := relativeURI(projectRoot, res.Path)
		for _, d := range res.Diagnostics {
			result := sarifResult{
				RuleID:  ruleIDStatePair,
				Level:   "warning",
				Message: sarifMessage{Text: d.Message},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: uri, URIBaseID: "%SRCROOT%"},
						Region: &sarifRegion{
							StartLine:   d.Location.Line,
							StartColumn: d.Location.Column,
						},
					},
				}},
			}
			for _, fix := range d.Fixes {
				result.Fixes = append(result.Fixes, toSARIFFix(uri, fix))
			}
			sarifResults = append(sarifResults, result)
		}
	}

	report := sarifReport{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:    toolName,
						Version: toolVersion,
						Rules: []sarifRule{{
							ID:               ruleIDStatePair,
							Name:             "StateHookPairNaming",
							ShortDescription: sarifMessage{Text: "State hook results must be destructured into a conventionally named value + setter pair."},
							DefaultConfig:    sarifRuleDefaultConfig{Level: "warning"},
						}},
					},
				},
				AutomationDetails: sarifAutomationDetails{GUID: uuid.NewString()},
				Results:           sarifResults,
			},
		},
	}

	return json.MarshalIndent(report, "", "  ")
}

func toSARIFFix(uri string, fix hookstate.FixProposal) sarifFix {
	replacements := make([]sarifReplacement, 0, len(fix.Edits))
	for _, edit := range fix.Edits {
		offset := int(edit.Start)
		length := int(edit.End - edit.Start)
		replacements = append(replacements, sarifReplacement{
			DeletedRegion:   sarifRegion{CharOffset: &offset, CharLength: &length},
			InsertedContent: sarifMessage{Text: edit.NewText},
		})
	}

	out := sarifFix{
		ArtifactChanges: []sarifArtifactChange{{
			ArtifactLocation: sarifArtifactLocation{URI: uri},
			Replacements:     replacements,
		}},
	}
	if fix.Description != "" {
		out.Description = &sarifMessage{Text: fix.Description}
	}
	return out
}

func relativeURI(projectRoot, filePath string) string {
	if projectRoot != "" && filepath.IsAbs(filePath) {
		rel, err := filepath.Rel(projectRoot, filePath)
		if err == nil {
			filePath = rel
		}
	}
	// SARIF URIs use forward slashes.
	return filepath.ToSlash(filePath)
}
