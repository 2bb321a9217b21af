package ai

// SchemaText is the serialized contract for AnalysisResult. Providers with
// native schema-constrained generation receive the same structure as a formal
// output schema; for the rest it is appended verbatim to the prompt so every
// backend is held to one shape.
const SchemaText = `{
  "type": "object",
  "properties": {
    "summary": { "type": "string" },
    "actionItems": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "task": { "type": "string" },
          "owner": { "type": "string" }
        },
        "required": ["task", "owner"]
      }
    },
    "missingPoints": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "point": { "type": "string" },
          "recommendation": { "type": "string" }
        },
        "required": ["point", "recommendation"]
      }
    }
  },
  "required": ["summary", "actionItems", "missingPoints"]
}`
