package cropdata

import "cropwatch/models"

// Full check-in question catalogs per crop. Risk weights: 10=critical/immediate
// action, 9=severe, 8=high, 7=moderate, 6=low-moderate.
var checkInQuestions = map[string][]models.ChecklistItem{
	"Rice": {
		// pest
		{ID: "rice-pest-1", Question: "Do you see holes or window-like feeding marks on leaves?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "rice-pest-2", Question: "Are there small brown insects on lower stems near water?", Category: models.CategoryPest, RiskWeight: 9},
		{ID: "rice-pest-3", Question: "Do you see leaves rolled/folded with white streaks inside?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "rice-pest-4", Question: "Are central shoots of young plants dried and brown (dead hearts)?", Category: models.CategoryPest, RiskWeight: 9},
		{ID: "rice-pest-5", Question: "Are panicles empty and turning white prematurely (white heads)?", Category: models.CategoryPest, RiskWeight: 10},
		{ID: "rice-pest-6", Question: "Do you see blue-green beetles making parallel white lines on leaves?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "rice-pest-7", Question: "Are there onion-shaped swellings on stems (silver shoots)?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "rice-pest-8", Question: "Do you see small green hoppers jumping when you touch plants?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "rice-pest-9", Question: "Are there shield-shaped bugs on grain heads?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "rice-pest-10", Question: "Is the central leaf yellowing with small larvae visible?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "rice-pest-11", Question: "Are there rats or birds damaging more than 5% of crop?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "rice-pest-12", Question: "Do you see caterpillars cutting leaves at night?", Category: models.CategoryPest, RiskWeight: 7},
		// disease
		{ID: "rice-disease-1", Question: "Are there diamond/spindle-shaped gray-brown spots on leaves?", Category: models.CategoryDisease, RiskWeight: 10},
		{ID: "rice-disease-2", Question: "Do you see large irregular brown/gray patches on leaf sheaths?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "rice-disease-3", Question: "Are plants yellowing with mosaic patterns and stunted growth?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "rice-disease-4", Question: "Do leaves have water-soaked lesions turning yellow then brown?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "rice-disease-5", Question: "Are there small circular brown spots with yellow halos on leaves?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "rice-disease-6", Question: "Is the panicle neck rotting or browning (blast on neck)?", Category: models.CategoryDisease, RiskWeight: 10},
		{ID: "rice-disease-7", Question: "Do grains have yellowish-green balls/powder (false smut)?", Category: models.CategoryDisease, RiskWeight: 7},
		{ID: "rice-disease-8", Question: "Are there narrow brown streaks between leaf veins?", Category: models.CategoryDisease, RiskWeight: 7},
		{ID: "rice-disease-9", Question: "Are seedlings wilting or rotting at the base?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "rice-disease-10", Question: "Do you see white powdery growth inside leaf sheaths?", Category: models.CategoryDisease, RiskWeight: 7},
		{ID: "rice-disease-11", Question: "Are roots blackened or rotting (root rot)?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "rice-disease-12", Question: "Do leaves show orange-red discoloration (physiological disorder)?", Category: models.CategoryDisease, RiskWeight: 6},
		// water
		{ID: "rice-water-1", Question: "Is standing water less than 5cm deep in field?", Category: models.CategoryWater, RiskWeight: 8},
		{ID: "rice-water-2", Question: "Is water deeper than 15cm submerging plant parts?", Category: models.CategoryWater, RiskWeight: 8},
		{ID: "rice-water-3", Question: "Are soil cracks visible in the field?", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "rice-water-4", Question: "Has water been stagnant for more than 3 days?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "rice-water-5", Question: "Has field been completely dry for more than 2 days during growth?", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "rice-water-6", Question: "Does water smell bad or look discolored (poor quality)?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "rice-water-7", Question: "Are plants wilting despite water in field?", Category: models.CategoryWater, RiskWeight: 8},
		{ID: "rice-water-8", Question: "Is half the field dry while other half is flooded?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "rice-water-9", Question: "Has there been no water for 5+ days during flowering?", Category: models.CategoryWater, RiskWeight: 10},
		{ID: "rice-water-10", Question: "Is drainage completely blocked causing waterlogging?", Category: models.CategoryWater, RiskWeight: 8},
		// nutrient
		{ID: "rice-nutrient-1", Question: "Are lower/older leaves uniformly pale yellow-green?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "rice-nutrient-2", Question: "Are leaf tips and margins brown, dry, or burnt-looking?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "rice-nutrient-3", Question: "Are plants very dark green but short and stunted?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "rice-nutrient-4", Question: "Do leaves show purple or reddish coloration?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "rice-nutrient-5", Question: "Are younger leaves pale yellow while old leaves stay green?", Category: models.CategoryNutrient, RiskWeight: 6},
		{ID: "rice-nutrient-6", Question: "Are middle leaves showing brown spots or rusty patches?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "rice-nutrient-7", Question: "Does each plant have fewer than 10 tillers at maximum tillering?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "rice-nutrient-8", Question: "Do leaves break easily or feel brittle?", Category: models.CategoryNutrient, RiskWeight: 6},
		{ID: "rice-nutrient-9", Question: "Are yellow stripes visible between green leaf veins?", Category: models.CategoryNutrient, RiskWeight: 6},
		{ID: "rice-nutrient-10", Question: "Are more than 30% of grains unfilled or chalky white?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "rice-nutrient-11", Question: "Are panicles very light with few filled grains?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "rice-nutrient-12", Question: "Is the field color uneven with yellow and green patches?", Category: models.CategoryNutrient, RiskWeight: 7},
		// growth
		{ID: "rice-growth-1", Question: "Are plants shorter than 60% of expected variety height?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "rice-growth-2", Question: "Is tillering less than half the normal count?", Category: models.CategoryGrowth, RiskWeight: 8},
		{ID: "rice-growth-3", Question: "Are panicles emerging at different times across the field?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "rice-growth-4", Question: "Is less than 50% of field flowering after one week?", Category: models.CategoryGrowth, RiskWeight: 8},
		{ID: "rice-growth-5", Question: "Are more than 20% of grains empty or unfilled?", Category: models.CategoryGrowth, RiskWeight: 8},
		{ID: "rice-growth-6", Question: "Are panicles shorter than 12cm?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "rice-growth-7", Question: "Is grain filling taking more than 25 days?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "rice-growth-8", Question: "Are more than 10% of plants fallen/lodged?", Category: models.CategoryGrowth, RiskWeight: 8},
		{ID: "rice-growth-9", Question: "Are tillers uneven with some very tall and others short?", Category: models.CategoryGrowth, RiskWeight: 6},
		{ID: "rice-growth-10", Question: "Has heading been delayed by more than one week?", Category: models.CategoryGrowth, RiskWeight: 7},
		// weather
		{ID: "rice-weather-1", Question: "Has it rained continuously for more than 4 days?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "rice-weather-2", Question: "Have daily temperatures been above 38°C for 3+ days?", Category: models.CategoryWeather, RiskWeight: 9},
		{ID: "rice-weather-3", Question: "Has there been no rain for more than 2 weeks?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "rice-weather-4", Question: "Have strong winds knocked down plants?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "rice-weather-5", Question: "Was there hail or storm in the past week?", Category: models.CategoryWeather, RiskWeight: 9},
		{ID: "rice-weather-6", Question: "Are night temperatures below 18°C during flowering?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "rice-weather-7", Question: "Did flooding submerge entire plants for more than one day?", Category: models.CategoryWeather, RiskWeight: 9},
		{ID: "rice-weather-8", Question: "Is morning dew staying on leaves past 10 AM daily?", Category: models.CategoryWeather, RiskWeight: 6},
	},
	"Wheat": {
		// pest
		{ID: "wheat-pest-1", Question: "Do you see tiny green or black insects in clusters on leaves?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "wheat-pest-2", Question: "Are there green caterpillars marching in groups eating leaves?", Category: models.CategoryPest, RiskWeight: 9},
		{ID: "wheat-pest-3", Question: "Are young plants cut at ground level overnight?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "wheat-pest-4", Question: "Do you see central shoots dying in seedling stage?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "wheat-pest-5", Question: "Are there white/yellow wavy lines inside leaves?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "wheat-pest-6", Question: "Do you see soil tubes near stems or root damage?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "wheat-pest-7", Question: "Are grasshoppers eating leaf edges or shoots?", Category: models.CategoryPest, RiskWeight: 6},
		{ID: "wheat-pest-8", Question: "Are there tiny orange/pink larvae in developing grains?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "wheat-pest-9", Question: "Are stems hollow with sawdust-like material inside?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "wheat-pest-10", Question: "Do leaves look silvery or bronzed with tiny specks?", Category: models.CategoryPest, RiskWeight: 6},
		{ID: "wheat-pest-11", Question: "Are there white fly-like insects on undersides of leaves?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "wheat-pest-12", Question: "Is bird or rat damage visible on grain heads?", Category: models.CategoryPest, RiskWeight: 7},
		// disease
		{ID: "wheat-disease-1", Question: "Are there yellow-orange powdery stripes on leaves?", Category: models.CategoryDisease, RiskWeight: 10},
		{ID: "wheat-disease-2", Question: "Do you see reddish-brown powder/pustules on leaves or stems?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "wheat-disease-3", Question: "Is there white fluffy powder on upper leaf surfaces?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "wheat-disease-4", Question: "Are grain heads partially or fully black/covered in powder?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "wheat-disease-5", Question: "Do you see tan spots with dark dots on leaves?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "wheat-disease-6", Question: "Are grain heads showing pink/orange discoloration?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "wheat-disease-7", Question: "Are lower leaves yellowing with dark fruiting bodies?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "wheat-disease-8", Question: "Are plants yellowing and dying in patches?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "wheat-disease-9", Question: "Is the stem base darkened or rotting at crown?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "wheat-disease-10", Question: "Do leaves have tan-brown spots with yellow borders?", Category: models.CategoryDisease, RiskWeight: 7},
		{ID: "wheat-disease-11", Question: "Are flag leaves showing small purple-brown spots?", Category: models.CategoryDisease, RiskWeight: 7},
		{ID: "wheat-disease-12", Question: "Are kernels shriveled, pink, or moldy?", Category: models.CategoryDisease, RiskWeight: 8},
		// water
		{ID: "wheat-water-1", Question: "Is soil powdery and dry when you dig 10cm deep?", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "wheat-water-2", Question: "Is water standing in field for more than one day?", Category: models.CategoryWater, RiskWeight: 8},
		// Category carried over verbatim from the agronomy sheet.
		{ID: "wheat-water-3", Question: "Do plants droop or curl leaves by afternoon?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "wheat-water-4", Question: "Did you miss watering during active tillering phase?", Category: models.CategoryWater, RiskWeight: 8},
		{ID: "wheat-water-5", Question: "Is soil dry during flowering or grain filling stage?", Category: models.CategoryWater, RiskWeight: 10},
		{ID: "wheat-water-6", Question: "Are there yellow patches due to poor drainage?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "wheat-water-7", Question: "Has it been more than 20 days without rain or irrigation?", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "wheat-water-8", Question: "Does soil feel hard and compacted?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "wheat-water-9", Question: "Is one side of field greener than the other (uneven water)?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "wheat-water-10", Question: "Are lower leaves dying due to waterlogging stress?", Category: models.CategoryWater, RiskWeight: 7},
		// nutrient
		{ID: "wheat-nutrient-1", Question: "Are older leaves pale yellow starting from tip?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "wheat-nutrient-2", Question: "Are leaf edges and tips brown and burnt looking?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "wheat-nutrient-3", Question: "Are plants deep green but very short and bushy?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "wheat-nutrient-4", Question: "Do older leaves show purple/reddish tinting?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "wheat-nutrient-5", Question: "Are younger leaves yellow while older stay dark green?", Category: models.CategoryNutrient, RiskWeight: 6},
		{ID: "wheat-nutrient-6", Question: "Does each plant have fewer than 3-4 tillers?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "wheat-nutrient-7", Question: "Are there less than 35 grains per spike/head?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "wheat-nutrient-8", Question: "Are grains small, lightweight or shriveled?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "wheat-nutrient-9", Question: "Are some heads completely empty (white heads)?", Category: models.CategoryNutrient, RiskWeight: 9},
		{ID: "wheat-nutrient-10", Question: "Do you see yellow stripes between green leaf veins?", Category: models.CategoryNutrient, RiskWeight: 6},
		{ID: "wheat-nutrient-11", Question: "Are new leaves pale or whitish (iron deficiency)?", Category: models.CategoryNutrient, RiskWeight: 6},
		{ID: "wheat-nutrient-12", Question: "Is overall crop color very light green or yellowish?", Category: models.CategoryNutrient, RiskWeight: 7},
		// growth
		{ID: "wheat-growth-1", Question: "Are plants less than 50cm tall when they should be taller?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "wheat-growth-2", Question: "Is stem elongation 7-10 days behind schedule?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "wheat-growth-3", Question: "Are heads emerging at very different times?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "wheat-growth-4", Question: "Is less than 60% of field in flower after one week?", Category: models.CategoryGrowth, RiskWeight: 8},
		{ID: "wheat-growth-5", Question: "Are more than 20% of grains undeveloped or empty?", Category: models.CategoryGrowth, RiskWeight: 8},
		{ID: "wheat-growth-6", Question: "Are spikes/heads shorter than 7cm?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "wheat-growth-7", Question: "Is grain filling completed in less than 20 days?", Category: models.CategoryGrowth, RiskWeight: 7},
		{ID: "wheat-growth-8", Question: "Are more than 10% of plants lying flat (lodged)?", Category: models.CategoryGrowth, RiskWeight: 8},
		{ID: "wheat-growth-9", Question: "Are awns (spikes) missing or broken on many heads?", Category: models.CategoryGrowth, RiskWeight: 6},
		{ID: "wheat-growth-10", Question: "Is there wide variation in plant height across field?", Category: models.CategoryGrowth, RiskWeight: 6},
		// weather
		{ID: "wheat-weather-1", Question: "Did temperature drop below -2°C (frost) recently?", Category: models.CategoryWeather, RiskWeight: 10},
		{ID: "wheat-weather-2", Question: "Have temperatures been above 35°C during grain formation?", Category: models.CategoryWeather, RiskWeight: 9},
		{ID: "wheat-weather-3", Question: "Did hail damage leaves, stems or grain heads?", Category: models.CategoryWeather, RiskWeight: 9},
		{ID: "wheat-weather-4", Question: "Have strong winds flattened parts of your crop?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "wheat-weather-5", Question: "Has there been 3+ weeks without rain during critical growth?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "wheat-weather-6", Question: "Is humidity very high (above 85%) for many days?", Category: models.CategoryWeather, RiskWeight: 7},
		{ID: "wheat-weather-7", Question: "Are temperatures below 12°C during flowering?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "wheat-weather-8", Question: "Has unseasonal rain occurred during harvest readiness?", Category: models.CategoryWeather, RiskWeight: 8},
	},
	"Maize": {
		// pest
		{ID: "maize-pest-1", Question: "Are there caterpillars with inverted Y mark on head in whorls?", Category: models.CategoryPest, RiskWeight: 10},
		{ID: "maize-pest-2", Question: "Do you see holes in stems with sawdust coming out?", Category: models.CategoryPest, RiskWeight: 9},
		{ID: "maize-pest-3", Question: "Are seedlings cut off at soil level overnight?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "maize-pest-4", Question: "Is the central whorl dried out in young plants?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "maize-pest-5", Question: "Do you see beetles with black spots eating leaves?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "maize-pest-6", Question: "Are plants stunted with roots looking chewed or damaged?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "maize-pest-7", Question: "Are seeds or young roots being eaten by soil insects?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "maize-pest-8", Question: "Are silks cut short or missing from ears?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "maize-pest-9", Question: "Do you see worms inside ears eating kernels?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "maize-pest-10", Question: "Are there tiny insects on tassels or upper leaves?", Category: models.CategoryPest, RiskWeight: 7},
		{ID: "maize-pest-11", Question: "Are plants wilting from root damage by white grubs?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "maize-pest-12", Question: "Is bird damage visible on developing ears?", Category: models.CategoryPest, RiskWeight: 7},
		// disease
		{ID: "maize-disease-1", Question: "Are there long yellow-gray spots on leaves (leaf blight)?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "maize-disease-2", Question: "Do you see white/gray fuzzy mold on ears?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "maize-disease-3", Question: "Are there small orange/rust-colored bumps on leaves?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "maize-disease-4", Question: "Do leaves show yellow stripes and stunted plants?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "maize-disease-5", Question: "Is there white downy growth on undersides of leaves?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "maize-disease-6", Question: "Are there large black tumor-like growths on ears/tassels?", Category: models.CategoryDisease, RiskWeight: 7},
		{ID: "maize-disease-7", Question: "Do leaves have rectangular gray lesions with brown borders?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "maize-disease-8", Question: "Are plants wilting despite having enough water?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "maize-disease-9", Question: "Are ears showing pink, red or white mold growth?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "maize-disease-10", Question: "Do leaves have circular spots with tan centers?", Category: models.CategoryDisease, RiskWeight: 7},
		{ID: "maize-disease-11", Question: "Are stalks rotting at base or breaking easily?", Category: models.CategoryDisease, RiskWeight: 8},
		{ID: "maize-disease-12", Question: "Do tassels or ears show fungal growth?", Category: models.CategoryDisease, RiskWeight: 7},
		// water
		{ID: "maize-water-1", Question: "Are leaves rolling inward like tubes?", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "maize-water-2", Question: "Is soil completely dry when you dig 15cm deep?", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "maize-water-3", Question: "Is water standing around plants for 2+ days?", Category: models.CategoryWater, RiskWeight: 8},
		{ID: "maize-water-4", Question: "Has there been no water for a week during silk emergence?", Category: models.CategoryWater, RiskWeight: 10},
		{ID: "maize-water-5", Question: "Do plants wilt and droop by mid-afternoon?", Category: models.CategoryWater, RiskWeight: 8},
		{ID: "maize-water-6", Question: "Is irrigation schedule irregular or inconsistent?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "maize-water-7", Question: "Did drought occur when tassels were emerging?", Category: models.CategoryWater, RiskWeight: 10},
		{ID: "maize-water-8", Question: "Is some of the field much drier than other parts?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "maize-water-9", Question: "Are lower leaves dying from waterlogged conditions?", Category: models.CategoryWater, RiskWeight: 7},
		{ID: "maize-water-10", Question: "Has soil been dry for 10+ days without irrigation?", Category: models.CategoryWater, RiskWeight: 9},
		// nutrient (the maize sheet has no growth/weather sections)
		{ID: "maize-nutrient-1", Question: "Are lower leaves yellowing in a V-shape from tip?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "maize-nutrient-2", Question: "Are leaf edges turning yellow then brown and crispy?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "maize-nutrient-3", Question: "Are plants short with reddish-purple leaves?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "maize-nutrient-4", Question: "Do younger leaves have pale yellow stripes?", Category: models.CategoryNutrient, RiskWeight: 6},
		{ID: "maize-nutrient-5", Question: "Are there white/yellow bands or stripes on young leaves?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "maize-nutrient-6", Question: "Do young leaves show yellow between green veins?", Category: models.CategoryNutrient, RiskWeight: 6},
		{ID: "maize-nutrient-7", Question: "Are ears less than half filled with kernels?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "maize-nutrient-8", Question: "Are tassels very small or delayed in emergence?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "maize-nutrient-9", Question: "Are plants less than 1 meter tall at tasseling?", Category: models.CategoryNutrient, RiskWeight: 8},
		{ID: "maize-nutrient-10", Question: "Are ears smaller than 12cm in length?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "maize-nutrient-11", Question: "Are there gaps or missing rows of kernels on ears?", Category: models.CategoryNutrient, RiskWeight: 7},
		{ID: "maize-nutrient-12", Question: "Is the overall crop color uneven with yellow and green patches?", Category: models.CategoryNutrient, RiskWeight: 7},
	},
}
