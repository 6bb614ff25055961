package imagegen

import "fmt"

// BuildDishPrompt shapes the generation prompt from the item name plus
// the category and description context off the import row.
func BuildDishPrompt(itemName, category, description string) string {
	prompt := fmt.Sprintf(
		"A professional food photograph of %q, served on a clean plate, "+
			"overhead angle, soft natural lighting, appetizing presentation, "+
			"neutral restaurant background.",
		itemName,
	)

	if category != "" {
		prompt += fmt.Sprintf(" Dish category: %s.", category)
	}
	if description != "" {
		prompt += fmt.Sprintf(" Description: %s.", description)
	}

	return prompt
}
