package translate

type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

var languages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Hindi", Code: "hi"},
	{Name: "Bengali", Code: "bn"},
	{Name: "Marathi", Code: "mr"},
	{Name: "Tamil", Code: "ta"},
	{Name: "Telugu", Code: "te"},
	{Name: "Gujarati", Code: "gu"},
	{Name: "Kannada", Code: "kn"},
	{Name: "Malayalam", Code: "ml"},
	{Name: "Punjabi", Code: "pa"},
	{Name: "Odia", Code: "or"},
	{Name: "Assamese", Code: "as"},
	{Name: "Urdu", Code: "ur"},
}

func Languages() []Language {
	result := make([]Language, len(languages))
	copy(result, languages)
	return result
}

func IsSupported(code string) bool {
	for _, language := range languages {
		if language.Code == code {
			return true
		}
	}
	return false
}
