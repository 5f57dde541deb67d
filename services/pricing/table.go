package pricing

import "kdexpertise/models"

// Read-only reference data. Keys follow the historical convention
// "mission_kind_bedrooms_bathroomsOrBucket"; entries only exist for mission
// types with published tariffs, everything else quotes "on request".

var priceTable = map[string]float64{
	// locatif, appartement: bedrooms 0-6 x bathrooms 1-3.
	"locatif_appartement_0_1": 120,
	"locatif_appartement_0_2": 135,
	"locatif_appartement_0_3": 150,
	"locatif_appartement_1_1": 135,
	"locatif_appartement_1_2": 150,
	"locatif_appartement_1_3": 165,
	"locatif_appartement_2_1": 150,
	"locatif_appartement_2_2": 165,
	"locatif_appartement_2_3": 180,
	"locatif_appartement_3_1": 165,
	"locatif_appartement_3_2": 180,
	"locatif_appartement_3_3": 195,
	"locatif_appartement_4_1": 180,
	"locatif_appartement_4_2": 195,
	"locatif_appartement_4_3": 210,
	"locatif_appartement_5_1": 195,
	"locatif_appartement_5_2": 210,
	"locatif_appartement_5_3": 225,
	"locatif_appartement_6_1": 210,
	"locatif_appartement_6_2": 225,
	"locatif_appartement_6_3": 240,

	// locatif, maison (villa prices as maison): bedrooms 0-6 x bathrooms 1-3.
	"locatif_maison_0_1": 150,
	"locatif_maison_0_2": 165,
	"locatif_maison_0_3": 180,
	"locatif_maison_1_1": 170,
	"locatif_maison_1_2": 185,
	"locatif_maison_1_3": 200,
	"locatif_maison_2_1": 190,
	"locatif_maison_2_2": 205,
	"locatif_maison_2_3": 220,
	"locatif_maison_3_1": 210,
	"locatif_maison_3_2": 225,
	"locatif_maison_3_3": 240,
	"locatif_maison_4_1": 230,
	"locatif_maison_4_2": 245,
	"locatif_maison_4_3": 260,
	"locatif_maison_5_1": 250,
	"locatif_maison_5_2": 265,
	"locatif_maison_5_3": 280,
	"locatif_maison_6_1": 270,
	"locatif_maison_6_2": 285,
	"locatif_maison_6_3": 300,

	// locatif, entrepot: surface buckets of 100 m2, capped at 2000.
	// Bucket 2000 matches the >2000 m2 extrapolation formula at the boundary.
	"locatif_entrepot_100_0":  200,
	"locatif_entrepot_200_0":  200,
	"locatif_entrepot_300_0":  200,
	"locatif_entrepot_400_0":  230,
	"locatif_entrepot_500_0":  260,
	"locatif_entrepot_600_0":  290,
	"locatif_entrepot_700_0":  320,
	"locatif_entrepot_800_0":  350,
	"locatif_entrepot_900_0":  380,
	"locatif_entrepot_1000_0": 410,
	"locatif_entrepot_1100_0": 440,
	"locatif_entrepot_1200_0": 470,
	"locatif_entrepot_1300_0": 500,
	"locatif_entrepot_1400_0": 530,
	"locatif_entrepot_1500_0": 560,
	"locatif_entrepot_1600_0": 590,
	"locatif_entrepot_1700_0": 620,
	"locatif_entrepot_1800_0": 650,
	"locatif_entrepot_1900_0": 680,
	"locatif_entrepot_2000_0": 710,
}

// modifier is either a flat surcharge or a fraction of the base price.
type modifier struct {
	Flat   float64
	Factor float64
}

var modifierTable = map[models.Option]modifier{
	models.OptionMeuble:      {Factor: 0.10},
	models.OptionPrint:       {Factor: 0.05},
	models.OptionJardin:      {Flat: 20},
	models.OptionParking:     {Flat: 10},
	models.OptionCave:        {Flat: 10},
	models.OptionPiscine:     {Flat: 30},
	models.OptionBxl:         {Flat: 20},
	models.OptionAdmin:       {Flat: 15},
	models.OptionReouverture: {Flat: 50},
}
