package constants

// Chain is the canonical identity of a Turkish retail chain.
type Chain string

const (
	Migros      Chain = "Migros"
	CarrefourSA Chain = "CarrefourSA"
	BIM         Chain = "BİM"
	A101        Chain = "A101"
	Sok         Chain = "ŞOK"
	Metro       Chain = "Metro"
	Macrocenter Chain = "Macrocenter"
	File        Chain = "File"
	HappyCenter Chain = "Happy Center"
	Hakmar      Chain = "Hakmar"
	BizimToptan Chain = "Bizim Toptan"
	OnurMarket  Chain = "Onur Market"
	TarimKredi  Chain = "Tarım Kredi Kooperatif Market"
	Teknosa     Chain = "Teknosa"
	MediaMarkt  Chain = "MediaMarkt"
	Watsons     Chain = "Watsons"
	Gratis      Chain = "Gratis"
	Rossmann    Chain = "Rossmann"
	Unknown     Chain = "Unknown"
)

var allChains = []Chain{
	Migros,
	CarrefourSA,
	BIM,
	A101,
	Sok,
	Metro,
	Macrocenter,
	File,
	HappyCenter,
	Hakmar,
	BizimToptan,
	OnurMarket,
	TarimKredi,
	Teknosa,
	MediaMarkt,
	Watsons,
	Gratis,
	Rossmann,
}

func ChainsAsStringSlice() []string {
	result := make([]string, len(allChains))
	for i, c := range allChains {
		result[i] = string(c)
	}
	return result
}
