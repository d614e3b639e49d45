package llm

// extractionSchema validates the completion response before it is mapped
// onto the domain types. Optional fields (cms) are deliberately not
// required; defaults are the assembler's concern.
const extractionSchema = `{
  "type": "object",
  "required": [
    "client_name",
    "project_summary",
    "deliverables",
    "timeline",
    "client_needs",
    "technical_requirements",
    "payment_milestones"
  ],
  "properties": {
    "client_name": {"type": "string"},
    "project_summary": {"type": "string"},
    "deliverables": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "description"],
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "timeline": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["phase", "duration", "description"],
        "properties": {
          "phase": {"type": "string"},
          "duration": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "client_needs": {
      "type": "array",
      "items": {"type": "string"}
    },
    "technical_requirements": {
      "type": "object",
      "properties": {
        "cms": {"type": "string"},
        "integrations": {"type": "array", "items": {"type": "string"}},
        "features": {"type": "array", "items": {"type": "string"}}
      }
    },
    "payment_milestones": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["milestone", "percentage"],
        "properties": {
          "milestone": {"type": "string"},
          "percentage": {"type": "number", "minimum": 0, "maximum": 100}
        }
      }
    }
  }
}`
