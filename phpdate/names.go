// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package phpdate

import (
	"golang.org/x/text/language"
)

// Names contains the localized month and day names used when formatting.
type Names struct {
	Tag         language.Tag
	Months      [12]string
	MonthsShort [12]string
	// Days and DaysShort are indexed by time.Weekday, ie. Sunday is 0.
	Days      [7]string
	DaysShort [7]string
	AM, PM    string
}

// English contains the English names and is used as the fallback for
// unsupported locales.
var English = &Names{
	Tag:         language.English,
	Months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	MonthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Days:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	DaysShort:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	AM:          "am",
	PM:          "pm",
}

var german = &Names{
	Tag:         language.German,
	Months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	MonthsShort: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	Days:        [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	DaysShort:   [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	AM:          "vorm.",
	PM:          "nachm.",
}

var french = &Names{
	Tag:         language.French,
	Months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	MonthsShort: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	Days:        [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	DaysShort:   [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	AM:          "am",
	PM:          "pm",
}

var spanish = &Names{
	Tag:         language.Spanish,
	Months:      [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	MonthsShort: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	Days:        [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	DaysShort:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	AM:          "a. m.",
	PM:          "p. m.",
}

var (
	supported = []*Names{English, german, french, spanish}
	matcher   = language.NewMatcher(tags(supported))
)

func tags(names []*Names) []language.Tag {
	t := make([]language.Tag, len(names))
	for i, n := range names {
		t[i] = n.Tag
	}
	return t
}

// NamesFor returns the Names that best match the supplied locale, which
// may be a BCP 47 tag, a Drupal style langcode (eg. pt-br) or an
// Accept-Language header value. English is returned if there is no
// reasonable match.
func NamesFor(locale string) *Names {
	if len(locale) == 0 {
		return English
	}
	_, idx := language.MatchStrings(matcher, locale)
	return supported[idx]
}

// Locales returns the tags of the supported locales.
func Locales() []language.Tag {
	return tags(supported)
}
