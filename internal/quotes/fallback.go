package quotes

// fallbackQuotes keeps plan generation working when the quote provider is
// unreachable.
var fallbackQuotes = []Quote{
	{Text: "The greatest gift you can give someone is your time, because when you give your time, you are giving a portion of your life that you will never get back.", Author: "Unknown"},
	{Text: "Kindness is like snow—it beautifies everything it covers.", Author: "Kahlil Gibran"},
	{Text: "The best way to spread Christmas cheer is singing loud for all to hear.", Author: "Buddy the Elf"},
	{Text: "Christmas waves a magic wand over this world, and behold, everything is softer and more beautiful.", Author: "Norman Vincent Peale"},
	{Text: "In the midst of winter, I found there was within me an invincible summer.", Author: "Albert Camus"},
	{Text: "Peace on earth will come to stay, when we live Christmas every day.", Author: "Helen Steiner Rice"},
	{Text: "The best of all gifts around any Christmas tree: the presence of a happy family all wrapped up in each other.", Author: "Burton Hillis"},
	{Text: "Christmas isn't a season. It's a feeling.", Author: "Edna Ferber"},
	{Text: "Blessed is the season which engages the whole world in a conspiracy of love.", Author: "Hamilton Wright Mabie"},
	{Text: "One of the most glorious messes in the world is the mess created in the living room on Christmas day.", Author: "Andy Rooney"},
	{Text: "The earth has grown old with its burden of care, but at Christmas it always is young.", Author: "Phillips Brooks"},
	{Text: "Christmas is not as much about opening our presents as opening our hearts.", Author: "Janice Maeditere"},
	{Text: "What is Christmas? It is tenderness for the past, courage for the present, hope for the future.", Author: "Agnes M. Pahro"},
	{Text: "At Christmas, all roads lead home.", Author: "Marjorie Holmes"},
	{Text: "Remember, if Christmas isn't found in your heart, you won't find it under a tree.", Author: "Charlotte Carpenter"},
	{Text: "Christmas is doing a little something extra for someone.", Author: "Charles M. Schulz"},
}
