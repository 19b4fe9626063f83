package camping

import (
	"fmt"
	"strconv"
	"strings"

	"camping_arequita/internal/domain"
)

/********** alias registries (single source of truth) **********/

// The backend has gone through a few payload shapes; these aliases absorb the
// variants so the rest of the site only sees domain.Accommodation.
var serviceAliases = map[string][]string{
	"id":          {"id", "service_id", "serviceId"},
	"type":        {"type", "category", "service_type"},
	"name":        {"name", "title", "service_name"},
	"description": {"description", "desc", "details"},
	"currency":    {"currency", "currency_code"},
}

var testimonialAliases = map[string][]string{
	"id":            {"id", "review_id"},
	"author":        {"author_name", "author", "name"},
	"avatar":        {"image_url", "avatar", "avatar_url"},
	"date":          {"created_at", "date"},
	"message":       {"message", "text", "comment"},
	"accommodation": {"service_name", "accommodation"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		switch s := v.(type) {
		case string:
			return s
		case float64:
			// ids sometimes arrive as numbers
			return strconv.FormatFloat(s, 'f', -1, 64)
		}
	}
	return ""
}

// firstAlias: first non-empty string for a named alias set.
func firstAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// getFloat: number from several paths (float64/int/string like "1.200,50").
func getFloat(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			// a comma marks the decimal; any dots before it are thousands
			// separators ("1.200,50" -> 1200.50)
			if strings.Contains(s, ",") {
				s = strings.ReplaceAll(s, ".", "")
				s = strings.Replace(s, ",", ".", 1)
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func getInt(m map[string]any, paths ...string) int {
	if f := getFloat(m, paths...); f != nil {
		return int(*f)
	}
	return 0
}

func getBool(m map[string]any, paths ...string) bool {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case bool:
			return v
		case float64:
			return v != 0
		}
	}
	return false
}

// sliceStrings: accept []any with either strings or {url/src/image_url}.
func sliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				for _, field := range []string{"url", "src", "image_url"} {
					if u, ok := t[field].(string); ok && u != "" {
						out = append(out, u)
						break
					}
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

/********** service mapper **********/

func mapServices(in []map[string]any) []domain.Accommodation {
	out := make([]domain.Accommodation, 0, len(in))
	for _, raw := range in {
		out = append(out, mapService(raw))
	}
	return out
}

func mapService(p map[string]any) domain.Accommodation {
	a := domain.Accommodation{
		ID:          firstAlias(p, serviceAliases, "id"),
		Name:        firstAlias(p, serviceAliases, "name"),
		Description: firstAlias(p, serviceAliases, "description"),
		Currency:    firstAlias(p, serviceAliases, "currency"),
		Capacity:    getInt(p, "capacity", "max_guests", "maxGuests"),
		Available:   getInt(p, "available", "available_count"),
		Total:       getInt(p, "total", "total_count"),
		Images:      sliceStrings(p, "images", "photos"),
		Featured:    getBool(p, "featured", "is_featured"),
		Promo:       getBool(p, "promo", "on_promotion"),
	}

	if t := strings.ToLower(firstAlias(p, serviceAliases, "type")); domain.ValidType(t) {
		a.Type = domain.AccommodationType(t)
	} else {
		a.Type = domain.TypeCamping
	}

	if f := getFloat(p, "price", "current_price"); f != nil {
		a.Price = *f
	}
	// Keep the original price only when it is a genuine discount; the
	// discount percentage itself is always derived, never trusted from the
	// payload.
	if f := getFloat(p, "originalPrice", "original_price"); f != nil && *f > a.Price {
		a.OriginalPrice = f
	}

	if rawAm, ok := lookupAny(p, "amenities").([]any); ok {
		for _, it := range rawAm {
			am, ok := it.(map[string]any)
			if !ok {
				continue
			}
			a.Amenities = append(a.Amenities, domain.Amenity{
				ID:   getInt(am, "id"),
				Name: lookupStr(am, "name"),
				Icon: lookupStr(am, "icon"),
			})
		}
	}

	// Clamp impossible availability instead of dropping the listing.
	if a.Total > 0 && a.Available > a.Total {
		a.Available = a.Total
	}
	return a
}

/********** testimonial mappers **********/

// mapTestimonialsPage accepts both payload generations: the array may live
// under "testimonials" or "reviews", and the paging fields may be absent.
func mapTestimonialsPage(raw map[string]any) domain.TestimonialsPage {
	var items []map[string]any
	for _, key := range []string{"testimonials", "reviews"} {
		if arr, ok := raw[key].([]any); ok {
			for _, it := range arr {
				if m, ok := it.(map[string]any); ok {
					items = append(items, m)
				}
			}
			break
		}
	}

	mapped := make([]domain.Testimonial, 0, len(items))
	for _, it := range items {
		mapped = append(mapped, mapTestimonial(it))
	}

	page := domain.TestimonialsPage{
		Items:       mapped,
		Total:       getInt(raw, "total"),
		Pages:       getInt(raw, "pages"),
		CurrentPage: getInt(raw, "current_page"),
	}
	if page.Total == 0 {
		page.Total = len(mapped)
	}
	if page.Pages == 0 {
		page.Pages = 1
	}
	if page.CurrentPage == 0 {
		page.CurrentPage = 1
	}
	return page
}

func mapTestimonial(r map[string]any) domain.Testimonial {
	id := firstAlias(r, testimonialAliases, "id")
	if id == "" {
		if f := getFloat(r, "id"); f != nil {
			id = fmt.Sprintf("%.0f", *f)
		}
	}
	return domain.Testimonial{
		ID:            id,
		Author:        firstAlias(r, testimonialAliases, "author"),
		Avatar:        firstAlias(r, testimonialAliases, "avatar"),
		Date:          firstAlias(r, testimonialAliases, "date"),
		Message:       firstAlias(r, testimonialAliases, "message"),
		Accommodation: firstAlias(r, testimonialAliases, "accommodation"),
	}
}
