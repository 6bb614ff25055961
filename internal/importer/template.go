package importer

// TemplateCSV is the downloadable upload template: the header row plus
// one sample row showing the expected formats.
func TemplateCSV() []byte {
	return []byte(
		"Restaurant Name,Name,Price,Category,Description,Veg,Vegan,Prep Time,Available,Image URL\n" +
			"Spice Garden,Paneer Tikka,250,Starters,Chargrilled cottage cheese with spices,yes,no,20,yes,\n",
	)
}
