package store

import "github.com/JonMunkholm/pharmacatalog/internal/core"

// seedCatalog is served when neither the local slot nor the primary store
// has products. Categories are fixed here rather than derived by the
// classifier, so a few entries differ from what Classify would return.
var seedCatalog = []core.Product{
	{Name: "ENSURE CH-RF", Unit: "200GM", Company: "ABBOTT HEALTH(NUT)", Category: core.CategoryNutrition},
	{Name: "ENSURE VAN", Unit: "400GM", Company: "ABBOTT HEALTH(NUT)", Category: core.CategoryNutrition},
	{Name: "SIMILAC", Unit: "400GM", Company: "ABBOTT HEALTH(NUT)", Category: core.CategoryNutrition},
	{Name: "PROTINEX CHOC", Unit: "250GM", Company: "DANONE", Category: core.CategoryNutrition},
	{Name: "COLGATE TP", Unit: "100GM", Company: "COLGATE", Category: core.CategoryOralCare},
	{Name: "COLGATE BRUSH", Unit: "SOFT", Company: "COLGATE", Category: core.CategoryOralCare},
	{Name: "SENSODYNE", Unit: "70GM", Company: "GSK CONSUMER", Category: core.CategoryOralCare},
	{Name: "DOVE SOAP", Unit: "100GM", Company: "UNILEVER", Category: core.CategoryPersonalCare},
	{Name: "NIVEA CREAM", Unit: "50ML", Company: "NIVEA", Category: core.CategoryPersonalCare},
	{Name: "PAMPERS", Unit: "NB10", Company: "P&G", Category: core.CategoryBaby},
	{Name: "JOHNSON BABY OIL", Unit: "100ML", Company: "JOHNSON & JOHNSON", Category: core.CategoryBaby},
	{Name: "WHISPER GREEN", Unit: "90", Company: "P&G", Category: core.CategoryFeminine},
	{Name: "STAYFREE", Unit: "20", Company: "JOHNSON & JOHNSON", Category: core.CategoryFeminine},
	{Name: "LOREAL SHAMPOO", Unit: "180ML", Company: "LOREAL", Category: core.CategoryCosmetics},
	{Name: "LAKME CREAM", Unit: "30GM", Company: "LAKME", Category: core.CategoryCosmetics},
	{Name: "VICKS RUB", Unit: "50GM", Company: "P&G", Category: core.CategoryPainRelief},
	{Name: "AMRUTANJAN", Unit: "8ML", Company: "AMRUTANJAN", Category: core.CategoryPainRelief},
	{Name: "CROCIN", Unit: "10TAB", Company: "GSK CONSUMER", Category: core.CategoryPainRelief},
	{Name: "IODEX", Unit: "40GM", Company: "GSK CONSUMER", Category: core.CategoryPainRelief},
	{Name: "DETTOL SOAP", Unit: "75GM", Company: "RECKITT", Category: core.CategoryPersonalCare},
	{Name: "LISTERINE", Unit: "250ML", Company: "JOHNSON & JOHNSON", Category: core.CategoryOralCare},
	{Name: "HEAD & SHOULDERS", Unit: "180ML", Company: "P&G", Category: core.CategoryPersonalCare},
	{Name: "PANTENE", Unit: "180ML", Company: "P&G", Category: core.CategoryPersonalCare},
	{Name: "ORAL B BRUSH", Unit: "SOFT", Company: "P&G", Category: core.CategoryOralCare},
	{Name: "ENSURE CH-RF", Unit: "2+1 OFFER", Company: "ABBOTT HEALTH(NUT)", Category: core.CategoryNutrition},
	{Name: "COLGATE BRUSH", Unit: "3+1X75GM", Company: "COLGATE", Category: core.CategoryOralCare},
	{Name: "PROTINEX", Unit: "OFFER", Company: "DANONE", Category: core.CategoryNutrition},
	{Name: "GLUCON D", Unit: "500GM", Company: "HEINZ", Category: core.CategoryNutrition},
	{Name: "BOURNVITA", Unit: "500GM", Company: "CADBURY", Category: core.CategoryNutrition},
	{Name: "HORLICKS", Unit: "500GM", Company: "GSK CONSUMER", Category: core.CategoryNutrition},
	{Name: "COMPLAN", Unit: "500GM", Company: "HEINZ", Category: core.CategoryNutrition},
	{Name: "PEDIASURE", Unit: "400GM", Company: "ABBOTT HEALTH(NUT)", Category: core.CategoryNutrition},
	{Name: "CERELAC", Unit: "300GM", Company: "NESTLE", Category: core.CategoryBaby},
	{Name: "LACTOGEN", Unit: "400GM", Company: "NESTLE", Category: core.CategoryBaby},
	{Name: "NAN PRO", Unit: "400GM", Company: "NESTLE", Category: core.CategoryBaby},
	{Name: "FAREX", Unit: "300GM", Company: "HEINZ", Category: core.CategoryBaby},
	{Name: "JOHNSON POWDER", Unit: "100GM", Company: "JOHNSON & JOHNSON", Category: core.CategoryBaby},
	{Name: "JOHNSON SHAMPOO", Unit: "100ML", Company: "JOHNSON & JOHNSON", Category: core.CategoryBaby},
	{Name: "HIMALAYA CREAM", Unit: "50GM", Company: "HIMALAYA", Category: core.CategoryPersonalCare},
	{Name: "PATANJALI SOAP", Unit: "75GM", Company: "PATANJALI", Category: core.CategoryPersonalCare},
	{Name: "DABUR HONEY", Unit: "250GM", Company: "DABUR", Category: core.CategoryMiscellaneous},
	{Name: "VICKS VAPORUB", Unit: "25GM", Company: "P&G", Category: core.CategoryPainRelief},
	{Name: "ENO", Unit: "30GM", Company: "GSK CONSUMER", Category: core.CategoryMiscellaneous},
	{Name: "PUDIN HARA", Unit: "30ML", Company: "DABUR", Category: core.CategoryMiscellaneous},
	{Name: "HAJMOLA", Unit: "120TAB", Company: "DABUR", Category: core.CategoryMiscellaneous},
	{Name: "DIGENE", Unit: "170ML", Company: "ABBOTT HEALTH(NUT)", Category: core.CategoryMiscellaneous},
	{Name: "GELUSIL", Unit: "170ML", Company: "PFIZER", Category: core.CategoryMiscellaneous},
	{Name: "BURNOL", Unit: "20GM", Company: "RECKITT", Category: core.CategoryPainRelief},
	{Name: "MOOV", Unit: "50GM", Company: "RECKITT", Category: core.CategoryPainRelief},
	{Name: "VOLINI", Unit: "30GM", Company: "RANBAXY", Category: core.CategoryPainRelief},
	{Name: "ASPRO", Unit: "10TAB", Company: "RECKITT", Category: core.CategoryPainRelief},
	{Name: "DISPRIN", Unit: "10TAB", Company: "RECKITT", Category: core.CategoryPainRelief},
	{Name: "PARACETAMOL", Unit: "10TAB", Company: "GENERIC", Category: core.CategoryPainRelief},
	{Name: "BETADINE", Unit: "15ML", Company: "WIN MEDICARE", Category: core.CategoryMiscellaneous},
	{Name: "DETTOL LIQUID", Unit: "125ML", Company: "RECKITT", Category: core.CategoryPersonalCare},
	{Name: "SAVLON", Unit: "100ML", Company: "ITC", Category: core.CategoryPersonalCare},
	{Name: "BAND AID", Unit: "10PCS", Company: "JOHNSON & JOHNSON", Category: core.CategoryMiscellaneous},
	{Name: "COTTON", Unit: "100GM", Company: "GENERIC", Category: core.CategoryMiscellaneous},
	{Name: "THERMOMETER", Unit: "1PC", Company: "GENERIC", Category: core.CategoryMiscellaneous},
	{Name: "GLUCOSE POWDER", Unit: "200GM", Company: "GENERIC", Category: core.CategoryMiscellaneous},
	{Name: "ORS", Unit: "10SACHETS", Company: "GENERIC", Category: core.CategoryMiscellaneous},
	{Name: "VITAMIN C", Unit: "30TAB", Company: "GENERIC", Category: core.CategoryNutrition},
	{Name: "CALCIUM", Unit: "30TAB", Company: "GENERIC", Category: core.CategoryNutrition},
	{Name: "IRON TABLETS", Unit: "30TAB", Company: "GENERIC", Category: core.CategoryNutrition},
	{Name: "MULTIVITAMIN", Unit: "30TAB", Company: "GENERIC", Category: core.CategoryNutrition},
	{Name: "ASPIRIN", Unit: "10TAB", Company: "BAYER", Category: core.CategoryPainRelief},
	{Name: "STREPSILS", Unit: "16LOZENGES", Company: "RECKITT", Category: core.CategoryMiscellaneous},
	{Name: "HALLS", Unit: "20DROPS", Company: "MONDELEZ", Category: core.CategoryMiscellaneous},
	{Name: "FISHERMAN FRIEND", Unit: "25GM", Company: "LOFTHOUSE", Category: core.CategoryMiscellaneous},
	{Name: "TIGER BALM", Unit: "19.4GM", Company: "HAW PAR", Category: core.CategoryPainRelief},
	{Name: "ZANDU BALM", Unit: "8ML", Company: "EMAMI", Category: core.CategoryPainRelief},
	{Name: "BOROLINE", Unit: "20GM", Company: "GD PHARMA", Category: core.CategoryPersonalCare},
	{Name: "VASELINE", Unit: "50ML", Company: "UNILEVER", Category: core.CategoryPersonalCare},
	{Name: "PONDS", Unit: "50GM", Company: "UNILEVER", Category: core.CategoryPersonalCare},
	{Name: "FAIR & LOVELY", Unit: "50GM", Company: "UNILEVER", Category: core.CategoryCosmetics},
}

// SeedProducts returns a fresh copy of the built-in sample catalog.
func SeedProducts() []core.Product {
	out := make([]core.Product, len(seedCatalog))
	copy(out, seedCatalog)
	return out
}
