package catalog

import "detailwave.be/booking-api/pkg/models"

var offerings = []models.Offering{
	{
		ID:              "s1",
		Name:            "Nettoyage Canapé",
		Tagline:         "Redonnez vie à votre salon.",
		Description:     "Élimination des taches tenaces, neutralisation des odeurs et désinfection complète par injection-extraction.",
		LongDescription: "Notre service de nettoyage de canapé à domicile utilise des techniques professionnelles pour traiter la microfibre, le velours, le coton et le lin. Nous éliminons les taches de café, de graisse, d'urine et neutralisons les mauvaises odeurs. Le résultat est visible immédiatement et le séchage est rapide.",
		Price:           40,
		PriceList: []models.PricingOption{
			{Label: "Fauteuil", Price: 40},
			{Label: "Canapé 2/3 places", Price: 60},
			{Label: "Canapé 4/5 places", Price: 70},
			{Label: "Canapé en U", Price: 80},
			{Label: "Pouf", Price: 19},
			{Label: "Lot de chaises (4-6)", Price: 50},
		},
		Category: models.CategoryTextile,
		ImageURL: "/Photo/Canap%C3%A9.jpg",
		Gallery:  []string{"/Photo/Canap%C3%A9.jpg", "/Photo/Tache.png"},
		Features: []string{"Détachage profond", "Désinfection", "Anti-odeurs", "Séchage rapide"},
	},
	{
		ID:              "s2",
		Name:            "Nettoyage Matelas",
		Tagline:         "Dormez sur vos deux oreilles.",
		Description:     "Désinfection totale anti-acariens, élimination des traces de transpiration et d'urine pour une hygiène parfaite.",
		LongDescription: "Nous passons un tiers de notre vie sur notre matelas. Notre nettoyage en profondeur élimine les acariens, les bactéries, les moisissures invisibles et les allergènes. Idéal pour les personnes allergiques ou pour simplement retrouver une literie saine et fraîche. Produits écologiques et non toxiques.",
		Price:           40,
		PriceList: []models.PricingOption{
			{Label: "Matelas Enfant", Price: 40},
			{Label: "Matelas 1 place", Price: 50},
			{Label: "Matelas 2 places", Price: 60},
		},
		Category: models.CategoryTextile,
		ImageURL: "/Photo/matelas.webp",
		Gallery:  []string{"/Photo/matelas.webp", "/Photo/Tache.png"},
		Features: []string{"Anti-acariens", "Élimination auréoles", "Hypoallergénique"},
	},
	{
		ID:              "s3",
		Name:            "Lavage Auto (Intérieur)",
		Tagline:         "Comme au premier jour.",
		Description:     "Lavage intérieur complet à domicile. Shampoing des sièges, nettoyage des plastiques et vitres.",
		LongDescription: "Nous intervenons sur votre lieu de travail ou à domicile pour un nettoyage intérieur méticuleux. De la citadine à l'utilitaire, nous traitons les plastiques, aspirons en profondeur et rénovons vos sièges (tissu ou cuir) par injection-extraction ou vapeur.",
		Price:           50,
		PriceList: []models.PricingOption{
			{Label: "Formule Éco (Aspiration + Plastiques)", Price: 50},
			{Label: "Formule Premium (Shampoing sièges inclus)", Price: 70},
		},
		Category: models.CategoryAuto,
		ImageURL: "/Photo/Voiture.webp",
		Gallery:  []string{"/Photo/Voiture.webp", "/Photo/shampouineuse%20vs%20nettoyeur%20vapeur.jpg"},
		Features: []string{"Shampoing sièges", "Nettoyage plastiques", "Sans eau", "Désinfection habitacle"},
	},
	{
		ID:              "s4",
		Name:            "Nettoyage Tapis",
		Tagline:         "Ravivez les couleurs.",
		Description:     "Décrassage en profondeur des fibres, qu'elles soient synthétiques, laine ou tapis d'Orient.",
		LongDescription: "Les tapis sont de véritables nids à poussière et allergènes. Notre matériel haut de gamme permet d'extraire la saleté incrustée au cœur des fibres sans les abîmer. Nous traitons les mauvaises odeurs (animaux, tabac) et redonnons de l'éclat aux couleurs.",
		Price:           50,
		PriceList: []models.PricingOption{
			{Label: "1 Tapis", Price: 50},
			{Label: "2 Tapis", Price: 80},
			{Label: "3 Tapis", Price: 100},
		},
		Category: models.CategoryTextile,
		ImageURL: "/Photo/Tapis.avif",
		Gallery:  []string{"/Photo/Tapis.avif", "/Photo/matelas.webp"},
		Features: []string{"Fibres naturelles", "Fibres synthétiques", "Séchage contrôlé"},
	},
}

var articles = []models.JournalArticle{
	{
		ID:      1,
		Title:   "Pourquoi nettoyer ses textiles ?",
		Date:    "Conseils d'expert",
		Excerpt: "Au-delà de l'esthétique, c'est une question de santé pour votre foyer.",
		Image:   "/Photo/PourquoiLaver.webp",
		Content: "<p>Les canapés et matelas sont les objets les plus utilisés de la maison, mais souvent les moins nettoyés. La poussière, les peaux mortes et l'humidité créent un environnement idéal pour les acariens.</p>" +
			"<p>Une aspiration simple ne suffit pas. L'injection-extraction permet de descendre plusieurs centimètres dans la fibre pour retirer ce qui est invisible à l'œil nu.</p>" +
			"<blockquote>\"Un air intérieur sain commence par des textiles propres.\"</blockquote>" +
			"<p>Chez DetailWave, nous utilisons des produits biodégradables qui garantissent la sécurité de vos enfants et de vos animaux de compagnie, tout en étant impitoyables avec la saleté.</p>",
	},
	{
		ID:      2,
		Title:   "Taches tenaces : Que faire ?",
		Date:    "Astuces",
		Excerpt: "Café, vin, urine... n'aggravez pas la situation avec des remèdes de grand-mère inadaptés.",
		Image:   "/Photo/Tache.png",
		Content: "<p>Le premier réflexe est souvent de frotter. Erreur ! Frotter incruste la tache et abîme la fibre. Il faut toujours tamponner avec un chiffon propre et sec.</p>" +
			"<p>Attention aux auréoles : nettoyer juste la tache sur un canapé sale va créer une zone propre qui ressortira comme une tache claire. C'est pourquoi nous préconisons toujours un nettoyage intégral de l'assise.</p>" +
			"<blockquote>\"La rapidité d'intervention est la clé pour sauver vos textiles préférés.\"</blockquote>" +
			"<p><strong>La Règle d'Or :</strong> si vous ne savez pas quel produit utiliser, utilisez de l'eau tiède et appelez un professionnel. Les produits chimiques de supermarché peuvent fixer la couleur de la tache définitivement.</p>",
	},
}

var reviews = []models.Review{
	{ID: 1, Author: "Sophie M.", City: "Liège", Rating: 5, Comment: "Canapé en microfibre comme neuf, taches de café disparues. Intervention rapide et soignée.", OfferingID: "s1", Date: "2024-11", Category: models.CategoryTextile},
	{ID: 2, Author: "Karim B.", City: "Herstal", Rating: 5, Comment: "Intérieur de la voiture impeccable, sièges shampouinés sur mon lieu de travail. Je recommande.", OfferingID: "s3", Date: "2024-12", Category: models.CategoryAuto},
	{ID: 3, Author: "Nathalie D.", City: "Seraing", Rating: 4, Comment: "Matelas deux places rafraîchi, plus aucune odeur. Petit retard sur l'horaire mais très bon résultat.", OfferingID: "s2", Date: "2025-01", Category: models.CategoryTextile},
	{ID: 4, Author: "Julien P.", City: "Ans", Rating: 5, Comment: "Deux tapis en laine ravivés, les couleurs ressortent vraiment. Contact facile et devis clair.", OfferingID: "s4", Date: "2025-02", Category: models.CategoryTextile},
}
