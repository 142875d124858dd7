// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package i18n translates the fixed UI strings shown next to login
// timestamps.
package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	LastLogin = "Last Login"
	Never     = "never"
	Username  = "Username"
	Name      = "Name"
	Email     = "Email"
)

// Relative time keys. Unit keys take the count; Ago and FromNow take the
// rendered unit phrase.
const (
	Now     = "now"
	Ago     = "%s ago"
	FromNow = "%s from now"

	Seconds = "%d seconds"
	Minutes = "%d minutes"
	Hours   = "%d hours"
	Days    = "%d days"
	Weeks   = "%d weeks"
	Months  = "%d months"
	Years   = "%d years"
)

// ErrBadMessage is returned when a bundled message cannot be compiled.
var ErrBadMessage = errors.New("malformed translation")

// Translator returns the localized text for a message key.
type Translator interface {
	T(key string) string
	// Sprintf renders a key taking arguments, selecting plural forms by
	// the first argument.
	Sprintf(key string, args ...any) string
}

func str(s string) catalog.Message {
	return catalog.String(s)
}

// count selects a plural form by the first argument.
func count(cases ...any) catalog.Message {
	return plural.Selectf(1, "%d", cases...)
}

var messages = map[language.Tag]map[string]catalog.Message{
	language.English: {
		Ago:     str("%s ago"),
		FromNow: str("%s from now"),
		Seconds: count(plural.One, "%d second", plural.Other, "%d seconds"),
		Minutes: count(plural.One, "%d minute", plural.Other, "%d minutes"),
		Hours:   count(plural.One, "%d hour", plural.Other, "%d hours"),
		Days:    count(plural.One, "%d day", plural.Other, "%d days"),
		Weeks:   count(plural.One, "%d week", plural.Other, "%d weeks"),
		Months:  count(plural.One, "%d month", plural.Other, "%d months"),
		Years:   count(plural.One, "%d year", plural.Other, "%d years"),
	},
	language.German: {
		LastLogin: str("Letzte Anmeldung"),
		Never:     str("nie"),
		Username:  str("Benutzername"),
		Name:      str("Name"),
		Email:     str("E-Mail"),
		Now:       str("jetzt"),
		Ago:       str("vor %s"),
		FromNow:   str("in %s"),
		Seconds:   count(plural.One, "%d Sekunde", plural.Other, "%d Sekunden"),
		Minutes:   count(plural.One, "%d Minute", plural.Other, "%d Minuten"),
		Hours:     count(plural.One, "%d Stunde", plural.Other, "%d Stunden"),
		Days:      count(plural.One, "%d Tag", plural.Other, "%d Tagen"),
		Weeks:     count(plural.One, "%d Woche", plural.Other, "%d Wochen"),
		Months:    count(plural.One, "%d Monat", plural.Other, "%d Monaten"),
		Years:     count(plural.One, "%d Jahr", plural.Other, "%d Jahren"),
	},
	language.French: {
		LastLogin: str("Dernière connexion"),
		Never:     str("jamais"),
		Username:  str("Identifiant"),
		Name:      str("Nom"),
		Email:     str("E-mail"),
		Now:       str("maintenant"),
		Ago:       str("il y a %s"),
		FromNow:   str("dans %s"),
		Seconds:   count(plural.One, "%d seconde", plural.Other, "%d secondes"),
		Minutes:   count(plural.One, "%d minute", plural.Other, "%d minutes"),
		Hours:     count(plural.One, "%d heure", plural.Other, "%d heures"),
		Days:      count(plural.One, "%d jour", plural.Other, "%d jours"),
		Weeks:     count(plural.One, "%d semaine", plural.Other, "%d semaines"),
		Months:    count(plural.One, "%d mois", plural.Other, "%d mois"),
		Years:     count(plural.One, "%d an", plural.Other, "%d ans"),
	},
	language.Spanish: {
		LastLogin: str("Último acceso"),
		Never:     str("nunca"),
		Username:  str("Usuario"),
		Name:      str("Nombre"),
		Email:     str("Correo"),
		Now:       str("ahora"),
		Ago:       str("hace %s"),
		FromNow:   str("dentro de %s"),
		Seconds:   count(plural.One, "%d segundo", plural.Other, "%d segundos"),
		Minutes:   count(plural.One, "%d minuto", plural.Other, "%d minutos"),
		Hours:     count(plural.One, "%d hora", plural.Other, "%d horas"),
		Days:      count(plural.One, "%d día", plural.Other, "%d días"),
		Weeks:     count(plural.One, "%d semana", plural.Other, "%d semanas"),
		Months:    count(plural.One, "%d mes", plural.Other, "%d meses"),
		Years:     count(plural.One, "%d año", plural.Other, "%d años"),
	},
	language.Russian: {
		LastLogin: str("Последний вход"),
		Never:     str("никогда"),
		Username:  str("Логин"),
		Name:      str("Имя"),
		Email:     str("Почта"),
		Now:       str("сейчас"),
		Ago:       str("%s назад"),
		FromNow:   str("через %s"),
		Seconds:   count(plural.One, "%d секунду", plural.Few, "%d секунды", plural.Many, "%d секунд", plural.Other, "%d секунды"),
		Minutes:   count(plural.One, "%d минуту", plural.Few, "%d минуты", plural.Many, "%d минут", plural.Other, "%d минуты"),
		Hours:     count(plural.One, "%d час", plural.Few, "%d часа", plural.Many, "%d часов", plural.Other, "%d часа"),
		Days:      count(plural.One, "%d день", plural.Few, "%d дня", plural.Many, "%d дней", plural.Other, "%d дня"),
		Weeks:     count(plural.One, "%d неделю", plural.Few, "%d недели", plural.Many, "%d недель", plural.Other, "%d недели"),
		Months:    count(plural.One, "%d месяц", plural.Few, "%d месяца", plural.Many, "%d месяцев", plural.Other, "%d месяца"),
		Years:     count(plural.One, "%d год", plural.Few, "%d года", plural.Many, "%d лет", plural.Other, "%d года"),
	},
}

// NewCatalog compiles every bundled translation into a catalog with English
// as the fallback language.
func NewCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.Set(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%w: %s %q: %w", ErrBadMessage, tag, key, err)
			}
		}
	}
	return b, nil
}

var bundled = mustCatalog()

func mustCatalog() catalog.Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Catalog returns the compiled bundled catalog.
func Catalog() catalog.Catalog {
	return bundled
}

// Supported lists the languages with bundled translations, English first.
func Supported() []language.Tag {
	tags := []language.Tag{language.English}
	for tag := range messages {
		if tag != language.English {
			tags = append(tags, tag)
		}
	}
	return tags
}

type printerTranslator struct {
	printer *message.Printer
}

// New returns a Translator for locale. The locale is matched against the
// bundled languages; unknown locales fall back to English.
func New(locale string) Translator {
	supported := Supported()
	_, idx := language.MatchStrings(language.NewMatcher(supported), locale)
	return &printerTranslator{
		printer: message.NewPrinter(supported[idx], message.Catalog(Catalog())),
	}
}

func (p *printerTranslator) T(key string) string {
	return p.printer.Sprintf(key)
}

func (p *printerTranslator) Sprintf(key string, args ...any) string {
	return p.printer.Sprintf(key, args...)
}
