package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"foliolens/internal/models"
)

func TestParseLang(t *testing.T) {
	assert.Equal(t, LangEN, ParseLang("en"))
	assert.Equal(t, LangEN, ParseLang(" EN "))
	assert.Equal(t, LangES, ParseLang("es"))
	assert.Equal(t, LangES, ParseLang(""))
	assert.Equal(t, LangES, ParseLang("fr"))
}

func TestLabelSetsAreComplete(t *testing.T) {
	for _, lang := range []Lang{LangES, LangEN} {
		set := ForLang(lang)
		v := reflect.ValueOf(set)
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).String(),
				"label %s missing for %s", v.Type().Field(i).Name, lang)
		}
	}
}

func TestForLangUnknownDefaultsToSpanish(t *testing.T) {
	assert.Equal(t, ForLang(LangES), ForLang(Lang("de")))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Habitación", CategoryLabel(models.CategoryRoom, LangES))
	assert.Equal(t, "Room", CategoryLabel(models.CategoryRoom, LangEN))
	assert.Equal(t, "Food & Beverage", CategoryLabel(models.CategoryFoodBeverage, LangEN))
	// Unknown categories fall back to the Other labels.
	assert.Equal(t, "Otros", CategoryLabel("Spa/Spa", LangES))
}
