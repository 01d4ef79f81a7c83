package services

type Product struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var advisoryMessages = map[string]string{
	"Apple___Apple_scab":                                 "Apply fungicide sprays (e.g., Captan, Mancozeb) and remove infected leaves.",
	"Apple___Black_rot":                                  "Prune infected branches, remove mummified fruit, and apply copper-based fungicides.",
	"Apple___Cedar_apple_rust":                           "Use resistant apple varieties and apply fungicide sprays at bud break.",
	"Apple___healthy":                                    "No treatment needed. Maintain proper orchard hygiene.",
	"Blueberry___healthy":                                "Your plant is healthy! Maintain soil moisture and monitor for pests.",
	"Cherry_(including_sour)___Powdery_mildew":           "Apply sulfur-based or neem oil sprays and prune overcrowded branches.",
	"Cherry_(including_sour)___healthy":                  "No treatment required. Ensure proper watering and pruning.",
	"Corn_(maize)___Cercospora_leaf_spot Gray_leaf_spot": "Use resistant varieties, rotate crops, and apply fungicides like azoxystrobin.",
	"Corn_(maize)___Common_rust_":                        "Plant resistant hybrids and apply fungicides if necessary.",
	"Corn_(maize)___Northern_Leaf_Blight":                "Remove infected debris, use fungicides like propiconazole, and practice crop rotation.",
	"Corn_(maize)___healthy":                             "Your corn is healthy! Maintain proper irrigation and nutrient balance.",
	"Grape___Black_rot":                                  "Remove infected leaves and fruits, ensure good air circulation, and apply fungicides like myclobutanil.",
	"Grape___Esca_(Black_Measles)":                       "Prune infected vines, avoid overwatering, and apply fungicides like flutriafol.",
	"Grape___Leaf_blight_(Isariopsis_Leaf_Spot)":         "Use copper fungicides and ensure proper vineyard spacing for airflow.",
	"Grape___healthy":                                    "No issues detected. Keep monitoring for signs of disease.",
	"Orange___Haunglongbing_(Citrus_greening)":           "Control psyllid insects with insecticides and remove infected trees if necessary.",
	"Peach___Bacterial_spot":                             "Apply copper sprays before bud break and avoid overhead irrigation.",
	"Peach___healthy":                                    "No issues detected. Keep monitoring for pests and diseases.",
	"Pepper,_bell___Bacterial_spot":                      "Apply copper fungicides and practice crop rotation.",
	"Pepper,_bell___healthy":                             "No treatment needed. Maintain optimal soil moisture and nutrients.",
	"Potato___Early_blight":                              "Use fungicides like chlorothalonil and remove infected leaves.",
	"Potato___Late_blight":                               "Apply fungicides like metalaxyl and avoid excessive moisture.",
	"Potato___healthy":                                   "Your potato plants are healthy! Keep monitoring for any signs of disease.",
	"Raspberry___healthy":                                "No issues detected. Ensure proper pruning for airflow.",
	"Soybean___healthy":                                  "No disease detected. Maintain proper soil health and irrigation.",
	"Squash___Powdery_mildew":                            "Use sulfur-based fungicides and avoid overhead watering.",
	"Strawberry___Leaf_scorch":                           "Remove infected leaves and apply fungicides like Captan.",
	"Strawberry___healthy":                               "Your strawberry plants are healthy! Keep monitoring for pests.",
	"Tomato___Bacterial_spot":                            "Apply copper sprays and avoid overhead watering.",
	"Tomato___Early_blight":                              "Rotate crops, remove infected leaves, and use fungicides like chlorothalonil.",
	"Tomato___Late_blight":                               "Apply copper-based fungicides and remove affected leaves.",
	"Tomato___Leaf_Mold":                                 "Improve air circulation, remove affected leaves, and apply fungicides.",
	"Tomato___Septoria_leaf_spot":                        "Use fungicides like chlorothalonil and practice crop rotation.",
	"Tomato___Spider_mites Two-spotted_spider_mite":      "Use neem oil or insecticidal soap to control mites.",
	"Tomato___Target_Spot":                               "Apply fungicides and remove infected leaves.",
	"Tomato___Tomato_Yellow_Leaf_Curl_Virus":             "Use virus-resistant seeds and control whiteflies.",
	"Tomato___Tomato_mosaic_virus":                       "Remove infected plants and disinfect gardening tools.",
	"Tomato___healthy":                                   "Your tomato plant is healthy! Maintain good watering and fertilization practices.",
}

var recommendedProducts = map[string][]Product{
	"Apple___Apple_scab": {
		{Name: "Captan Fungicide", URL: "https://example.com/captan-fungicide"},
		{Name: "Mancozeb Fungicide", URL: "https://example.com/mancozeb-fungicide"},
	},
	"Apple___Black_rot": {
		{Name: "Copper Fungicide", URL: "https://example.com/copper-fungicide"},
		{Name: "Pruning Shears", URL: "https://example.com/pruning-shears"},
	},
	"Apple___Cedar_apple_rust": {
		{Name: "Captan Fungicide", URL: "https://www.westonnurseries.com/cedar-apple-rust/"},
		{Name: "Mancozeb Fungicide", URL: "https://kb.jniplants.com/preventing-cedar-apple-rust"},
	},
	"Potato___Early_blight": {
		{Name: "Copper Fungicide", URL: "https://krushidukan.bharatagri.com/en/products/potato-surkasha-kit-blight-1"},
		{Name: "Pruning Shears", URL: "https://krushidukan.bharatagri.com/en/products/control-kit-in-turmeric-ginger"},
	},
}

func advisoryFor(label string) (string, []Product) {
	products := recommendedProducts[label]
	if products == nil {
		products = []Product{}
	}
	return advisoryMessages[label], append([]Product(nil), products...)
}
