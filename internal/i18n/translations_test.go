package i18n_test

import (
	"testing"

	"camping_arequita/internal/domain"
	"camping_arequita/internal/i18n"
)

func TestT_AllLanguagesHaveCoreKeys(t *testing.T) {
	keys := []string{"nav_home", "hero_title", "acc_no_results", "sug_success", "error"}
	for _, lang := range domain.Languages() {
		for _, k := range keys {
			if got := i18n.T(k, lang); got == "" || got == k {
				t.Fatalf("missing translation %s/%s", lang, k)
			}
		}
	}
}

func TestT_FallsBackToSpanishThenKey(t *testing.T) {
	// unknown language falls back to es
	if got := i18n.T("nav_home", domain.Language("fr")); got != "Inicio" {
		t.Fatalf("expected es fallback, got %q", got)
	}
	// unknown key is returned verbatim so the gap is visible
	if got := i18n.T("no_such_key", domain.LangEN); got != "no_such_key" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}

func TestTable_CopyIsDetached(t *testing.T) {
	tbl := i18n.Table(domain.LangEN)
	if tbl["nav_home"] != "Home" {
		t.Fatalf("nav_home = %q", tbl["nav_home"])
	}
	tbl["nav_home"] = "mutated"
	if got := i18n.T("nav_home", domain.LangEN); got != "Home" {
		t.Fatalf("table mutation leaked into the source: %q", got)
	}
	// unknown language serves the Spanish table
	if got := i18n.Table(domain.Language("fr"))["nav_home"]; got != "Inicio" {
		t.Fatalf("fallback table nav_home = %q", got)
	}
}

func TestTypeLabel(t *testing.T) {
	if got := i18n.TypeLabel(domain.TypeCabin, domain.LangEN); got != "Cabins" {
		t.Fatalf("cabin/en = %q", got)
	}
	if got := i18n.TypeLabel(domain.TypeCamping, domain.LangES); got != "Parcelas" {
		t.Fatalf("camping/es = %q", got)
	}
}
