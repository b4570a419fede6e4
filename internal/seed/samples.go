package seed

import "github.com/BruksfildServices01/feedback-hub/internal/models"

var sampleStores = [][]models.StoreTranslation{
	{
		{Language: "en", Name: "Downtown Store", Location: "123 Main St, City Center"},
		{Language: "he", Name: "חנות מרכז העיר", Location: "רחוב ראשי 123, מרכז העיר"},
	},
	{
		{Language: "en", Name: "Westside Location", Location: "456 West Ave, Westside"},
		{Language: "he", Name: "סניף מערב העיר", Location: "שדרות מערב 456, מערב העיר"},
	},
	{
		{Language: "en", Name: "Airport Branch", Location: "789 Airport Rd, Terminal 2"},
		{Language: "he", Name: "סניף שדה התעופה", Location: "רחוב שדה התעופה 789, טרמינל 2"},
	},
	{
		{Language: "en", Name: "Northgate Mall", Location: "321 Mall Dr, Northgate"},
		{Language: "he", Name: "קניון צפון השער", Location: "דרך הקניון 321, צפון השער"},
	},
}

var sampleReviews = []struct {
	rating  int
	comment string
}{
	{5, "Excellent service! The staff was very helpful and friendly."},
	{4, "Good experience overall. Clean store and quick checkout."},
	{3, "Average experience. Wait time was a bit long."},
	{5, "Love this location! Always stocked and organized."},
	{4, "Great product selection. Would recommend to others."},
}
