// Package zones holds the Nigerian states and local government areas used to
// populate the location step of the project wizard.
package zones

import "sort"

// NigeriaStates maps each state (plus the FCT) to its local government areas.
var NigeriaStates = map[string][]string{
	"Abia":        {"Aba North", "Aba South", "Arochukwu", "Bende", "Isiala Ngwa North", "Ohafia", "Umuahia North", "Umuahia South"},
	"Adamawa":     {"Demsa", "Fufore", "Ganye", "Girei", "Gombi", "Jada", "Mubi North", "Yola North", "Yola South"},
	"Akwa Ibom":   {"Abak", "Eket", "Ibeno", "Ikot Ekpene", "Itu", "Oron", "Uyo"},
	"Anambra":     {"Aguata", "Awka North", "Awka South", "Idemili North", "Nnewi North", "Ogbaru", "Onitsha North", "Onitsha South"},
	"Bauchi":      {"Alkaleri", "Bauchi", "Darazo", "Ganjuwa", "Katagum", "Misau", "Ningi", "Toro"},
	"Bayelsa":     {"Brass", "Ekeremor", "Kolokuma/Opokuma", "Nembe", "Ogbia", "Sagbama", "Southern Ijaw", "Yenagoa"},
	"Benue":       {"Ado", "Gboko", "Katsina-Ala", "Makurdi", "Oju", "Otukpo", "Vandeikya"},
	"Borno":       {"Askira/Uba", "Bama", "Biu", "Damboa", "Gwoza", "Jere", "Konduga", "Maiduguri"},
	"Cross River": {"Akamkpa", "Calabar Municipal", "Calabar South", "Ikom", "Obudu", "Ogoja", "Yakurr"},
	"Delta":       {"Aniocha South", "Ethiope East", "Ika South", "Okpe", "Sapele", "Udu", "Ughelli North", "Uvwie", "Warri South"},
	"Ebonyi":      {"Abakaliki", "Afikpo North", "Afikpo South", "Ebonyi", "Ezza North", "Ishielu", "Ohaukwu"},
	"Edo":         {"Akoko-Edo", "Egor", "Esan Central", "Etsako West", "Ikpoba-Okha", "Oredo", "Ovia North-East", "Uhunmwonde"},
	"Ekiti":       {"Ado-Ekiti", "Efon", "Ido-Osi", "Ikere", "Ikole", "Irepodun/Ifelodun", "Oye"},
	"Enugu":       {"Aninri", "Enugu East", "Enugu North", "Enugu South", "Igbo-Eze North", "Nkanu West", "Nsukka", "Udi"},
	"Gombe":       {"Akko", "Balanga", "Billiri", "Dukku", "Funakaye", "Gombe", "Kaltungo", "Yamaltu/Deba"},
	"Imo":         {"Aboh Mbaise", "Ikeduru", "Mbaitoli", "Okigwe", "Orlu", "Owerri Municipal", "Owerri North", "Owerri West"},
	"Jigawa":      {"Babura", "Birnin Kudu", "Dutse", "Gumel", "Hadejia", "Kazaure", "Ringim"},
	"Kaduna":      {"Chikun", "Igabi", "Jema'a", "Kaduna North", "Kaduna South", "Kafanchan", "Sabon Gari", "Zaria"},
	"Kano":        {"Dala", "Fagge", "Gwale", "Kano Municipal", "Kumbotso", "Nassarawa", "Tarauni", "Ungogo"},
	"Katsina":     {"Batagarawa", "Daura", "Dutsin-Ma", "Funtua", "Jibia", "Katsina", "Malumfashi"},
	"Kebbi":       {"Aleiro", "Argungu", "Birnin Kebbi", "Bunza", "Jega", "Yauri", "Zuru"},
	"Kogi":        {"Adavi", "Ajaokuta", "Dekina", "Idah", "Kabba/Bunu", "Lokoja", "Okene"},
	"Kwara":       {"Asa", "Ilorin East", "Ilorin South", "Ilorin West", "Offa", "Oyun", "Pategi"},
	"Lagos":       {"Agege", "Ajeromi-Ifelodun", "Alimosho", "Amuwo-Odofin", "Apapa", "Badagry", "Epe", "Eti-Osa", "Ibeju-Lekki", "Ifako-Ijaiye", "Ikeja", "Ikorodu", "Kosofe", "Lagos Island", "Lagos Mainland", "Mushin", "Ojo", "Oshodi-Isolo", "Shomolu", "Surulere"},
	"Nasarawa":    {"Akwanga", "Awe", "Doma", "Karu", "Keffi", "Lafia", "Nasarawa"},
	"Niger":       {"Agaie", "Bida", "Bosso", "Chanchaga", "Kontagora", "Lapai", "Minna", "Suleja"},
	"Ogun":        {"Abeokuta North", "Abeokuta South", "Ado-Odo/Ota", "Ifo", "Ijebu Ode", "Obafemi Owode", "Sagamu"},
	"Ondo":        {"Akure North", "Akure South", "Ilaje", "Odigbo", "Okitipupa", "Ondo West", "Owo"},
	"Osun":        {"Ede North", "Ife Central", "Ife East", "Ilesa East", "Irepodun", "Osogbo", "Olorunda"},
	"Oyo":         {"Akinyele", "Egbeda", "Ibadan North", "Ibadan North-East", "Ibadan South-West", "Ido", "Ogbomosho North", "Oluyole", "Oyo East"},
	"Plateau":     {"Barkin Ladi", "Bassa", "Bokkos", "Jos East", "Jos North", "Jos South", "Pankshin", "Shendam"},
	"Rivers":      {"Bonny", "Degema", "Eleme", "Ikwerre", "Obio-Akpor", "Okrika", "Oyigbo", "Port Harcourt"},
	"Sokoto":      {"Bodinga", "Dange Shuni", "Gwadabawa", "Sokoto North", "Sokoto South", "Tambuwal", "Wurno"},
	"Taraba":      {"Ardo Kola", "Bali", "Gassol", "Jalingo", "Takum", "Wukari", "Zing"},
	"Yobe":        {"Bade", "Damaturu", "Fika", "Gashua", "Geidam", "Nguru", "Potiskum"},
	"Zamfara":     {"Anka", "Bungudu", "Gummi", "Gusau", "Kaura Namoda", "Maru", "Talata Mafara"},
	"FCT":         {"Abaji", "Abuja Municipal", "Bwari", "Gwagwalada", "Kuje", "Kwali"},
}

// GetStates returns all state names in alphabetical order.
func GetStates() []string {
	states := make([]string, 0, len(NigeriaStates))
	for state := range NigeriaStates {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}

// GetLGAs returns the local government areas of a state. Unknown states
// return an empty list, never nil.
func GetLGAs(state string) []string {
	lgas, ok := NigeriaStates[state]
	if !ok {
		return []string{}
	}
	out := make([]string, len(lgas))
	copy(out, lgas)
	return out
}
