package extraction

// systemPrompt instructs the model how to extract a recipe from a
// cooking-video transcript
const systemPrompt = `You are a recipe extraction assistant. Given a transcript from a cooking video, extract a structured recipe.

Rules:
- Extract ALL ingredients mentioned, with quantities. If quantities are not explicitly stated, estimate reasonable amounts.
- Write clear, numbered step-by-step cooking instructions.
- If the source is in English, also provide Hebrew translations for the title and instructions.
- If the source is in Hebrew, also provide English translations for the title and instructions.
- Detect the source language of the transcript.
- Assign relevant tags (e.g., "vegetarian", "quick", "dessert", "Israeli", "Italian", etc.)
- If prep time, cook time, or servings are mentioned or can be estimated, include them.
- Keep descriptions concise but informative.`

// saveRecipeTool is the forced tool whose input schema constrains the
// model output to the Result shape
const saveRecipeToolName = "save_recipe"

// requiredFields must be present on the tool input; absence of any of
// them is a schema violation and the extraction fails closed
var requiredFields = []string{"title", "ingredients", "instructions", "tags", "sourceLanguage"}

// saveRecipeSchema is the JSON Schema for the save_recipe tool input
var saveRecipeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":         map[string]any{"type": "string", "description": "Recipe title in source language"},
		"titleHe":       map[string]any{"type": "string", "description": "Recipe title in Hebrew"},
		"description":   map[string]any{"type": "string", "description": "Brief description"},
		"descriptionHe": map[string]any{"type": "string", "description": "Description in Hebrew"},
		"ingredients": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":   map[string]any{"type": "string"},
					"nameHe": map[string]any{"type": "string"},
					"amount": map[string]any{"type": "string"},
					"unit":   map[string]any{"type": "string"},
				},
				"required": []string{"name", "amount", "unit"},
			},
		},
		"instructions": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Step-by-step instructions in source language",
		},
		"instructionsHe": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Instructions in Hebrew",
		},
		"prepTime": map[string]any{"type": "number", "description": "Prep time in minutes"},
		"cookTime": map[string]any{"type": "number", "description": "Cook time in minutes"},
		"servings": map[string]any{"type": "number"},
		"tags":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"sourceLanguage": map[string]any{"type": "string", "description": "ISO 639-1 code"},
	},
	"required": requiredFields,
}
