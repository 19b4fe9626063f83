// Package i18n is the static display-string table for the four site
// languages. Pure lookup, no logic.
package i18n

import "camping_arequita/internal/domain"

var tables = map[domain.Language]map[string]string{
	domain.LangES: {
		"nav_home":            "Inicio",
		"nav_accommodations":  "Alojamientos",
		"nav_services":        "Servicios",
		"nav_reviews":         "Opiniones",
		"nav_contact":         "Contacto",
		"hero_title":          "Descubre la magia del Camping Arequita",
		"hero_subtitle":       "Un paraíso natural en el corazón de Lavalleja. Cabañas premium, parcelas equipadas y experiencias únicas rodeados de la belleza de las sierras uruguayas.",
		"hero_cta":            "Explorar Alojamientos",
		"acc_cabins":          "Cabañas",
		"acc_motorhome":       "Motorhome",
		"acc_camping":         "Parcelas",
		"acc_per_night":       "/noche",
		"acc_book_now":        "Reservar Ahora",
		"acc_all_types":       "Todos",
		"acc_sort_price_low":  "Menor precio",
		"acc_sort_price_high": "Mayor precio",
		"acc_results":         "resultados",
		"acc_no_results":      "No se encontraron resultados",
		"sug_title":           "Buzón de Sugerencias",
		"sug_cat_general":     "General",
		"sug_cat_services":    "Servicios",
		"sug_cat_facilities":  "Instalaciones",
		"sug_cat_activities":  "Actividades",
		"sug_success":         "¡Gracias por tu sugerencia! La revisaremos pronto.",
		"error":               "Ha ocurrido un error",
	},
	domain.LangEN: {
		"nav_home":            "Home",
		"nav_accommodations":  "Accommodations",
		"nav_services":        "Services",
		"nav_reviews":         "Testimonials",
		"nav_contact":         "Contact",
		"hero_title":          "Discover the magic of Camping Arequita",
		"hero_subtitle":       "A natural paradise in the heart of Lavalleja. Premium cabins, equipped plots, and unique experiences surrounded by the beauty of the Uruguayan sierras.",
		"hero_cta":            "Explore Accommodations",
		"acc_cabins":          "Cabins",
		"acc_motorhome":       "Motorhome",
		"acc_camping":         "Camping Plots",
		"acc_per_night":       "/night",
		"acc_book_now":        "Book Now",
		"acc_all_types":       "All",
		"acc_sort_price_low":  "Lowest price",
		"acc_sort_price_high": "Highest price",
		"acc_results":         "results",
		"acc_no_results":      "No results found",
		"sug_title":           "Suggestion Box",
		"sug_cat_general":     "General",
		"sug_cat_services":    "Services",
		"sug_cat_facilities":  "Facilities",
		"sug_cat_activities":  "Activities",
		"sug_success":         "Thank you for your suggestion! We will review it soon.",
		"error":               "An error occurred",
	},
	domain.LangPT: {
		"nav_home":            "Início",
		"nav_accommodations":  "Acomodações",
		"nav_services":        "Serviços",
		"nav_reviews":         "Depoimentos",
		"nav_contact":         "Contato",
		"hero_title":          "Descubra a magia do Camping Arequita",
		"hero_subtitle":       "Um paraíso natural no coração de Lavalleja. Cabanas premium, parcelas equipadas e experiências únicas cercadas pela beleza das serras uruguaias.",
		"hero_cta":            "Explorar Acomodações",
		"acc_cabins":          "Cabanas",
		"acc_motorhome":       "Motorhome",
		"acc_camping":         "Parcelas",
		"acc_per_night":       "/noite",
		"acc_book_now":        "Reservar Agora",
		"acc_all_types":       "Todos",
		"acc_sort_price_low":  "Menor preço",
		"acc_sort_price_high": "Maior preço",
		"acc_results":         "resultados",
		"acc_no_results":      "Nenhum resultado encontrado",
		"sug_title":           "Caixa de Sugestões",
		"sug_cat_general":     "Geral",
		"sug_cat_services":    "Serviços",
		"sug_cat_facilities":  "Instalações",
		"sug_cat_activities":  "Atividades",
		"sug_success":         "Obrigado pela sua sugestão! Vamos analisá-la em breve.",
		"error":               "Ocorreu um erro",
	},
	domain.LangZH: {
		"nav_home":            "首页",
		"nav_accommodations":  "住宿",
		"nav_services":        "服务",
		"nav_reviews":         "评价",
		"nav_contact":         "联系",
		"hero_title":          "发现阿雷基塔露营地的魅力",
		"hero_subtitle":       "拉瓦列哈中心的自然天堂。高品质木屋、配套营位与独特体验，环绕在乌拉圭山地的自然之美中。",
		"hero_cta":            "浏览住宿",
		"acc_cabins":          "木屋",
		"acc_motorhome":       "房车",
		"acc_camping":         "营位",
		"acc_per_night":       "/晚",
		"acc_book_now":        "立即预订",
		"acc_all_types":       "全部",
		"acc_sort_price_low":  "价格从低到高",
		"acc_sort_price_high": "价格从高到低",
		"acc_results":         "条结果",
		"acc_no_results":      "未找到结果",
		"sug_title":           "建议箱",
		"sug_cat_general":     "通用",
		"sug_cat_services":    "服务",
		"sug_cat_facilities":  "设施",
		"sug_cat_activities":  "活动",
		"sug_success":         "感谢你的建议！我们会尽快查看。",
		"error":               "发生错误",
	},
}

// Table returns a copy of the full string table for lang, Spanish when the
// language is unknown.
func Table(lang domain.Language) map[string]string {
	tbl, ok := tables[lang]
	if !ok {
		tbl = tables[domain.DefaultLanguage]
	}
	out := make(map[string]string, len(tbl))
	for k, v := range tbl {
		out[k] = v
	}
	return out
}

// T looks up key in lang, falling back to Spanish, then to the key itself so
// a missing entry is visible rather than blank.
func T(key string, lang domain.Language) string {
	if tbl, ok := tables[lang]; ok {
		if s, ok := tbl[key]; ok {
			return s
		}
	}
	if s, ok := tables[domain.DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// TypeLabel is the localized display label for an accommodation type. A
// search query that names a type in the page's language acts as a type filter.
func TypeLabel(t domain.AccommodationType, lang domain.Language) string {
	switch t {
	case domain.TypeCabin:
		return T("acc_cabins", lang)
	case domain.TypeMotorhome:
		return T("acc_motorhome", lang)
	case domain.TypeCamping:
		return T("acc_camping", lang)
	}
	return string(t)
}
