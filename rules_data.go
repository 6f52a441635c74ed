package intl

// Built-in formatting data. Tables follow CLDR values for each locale;
// cmd/intl-gen regenerates the list and relative sections from a CLDR
// release. "pt" ships number data only, so date and time lookups for it
// resolve through the defaults.
var formattingRules = map[string]FormattingRules{
	"en": {
		Locale: "en",
		Number: NumberRules{
			DecimalSep:       ".",
			GroupSep:         ",",
			MinusSign:        "-",
			PercentSym:       "%",
			CurrencyPattern:  "{symbol}{amount}",
			CurrencyDecimals: 2,
		},
		DateTime: DateTimeRules{
			Date: PatternSet{
				Full:   "EEEE, MMMM d, y",
				Long:   "MMMM d, y",
				Medium: "MMM d, y",
				Short:  "M/d/yy",
			},
			Time: PatternSet{
				Full:   "h:mm:ss a z",
				Long:   "h:mm:ss a z",
				Medium: "h:mm:ss a",
				Short:  "h:mm a",
			},
			Months: []string{
				"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December",
			},
			MonthsAbbrev: []string{
				"Jan", "Feb", "Mar", "Apr", "May", "Jun",
				"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
			},
			Weekdays: []string{
				"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
			},
			WeekdaysAbbrev: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			DayPeriods:     [2]string{"AM", "PM"},
			Use24Hour:      false,
		},
		List: ListRules{
			Conjunction: ListPatterns{
				Pair:   "{0} and {1}",
				Start:  "{0}, {1}",
				Middle: "{0}, {1}",
				End:    "{0}, and {1}",
			},
			Disjunction: ListPatterns{
				Pair:   "{0} or {1}",
				Start:  "{0}, {1}",
				Middle: "{0}, {1}",
				End:    "{0}, or {1}",
			},
		},
		Relative: RelativeRules{
			Long: map[string]RelativePatterns{
				"year": {
					Future: map[PluralCategory]string{PluralOne: "in {0} year", PluralOther: "in {0} years"},
					Past:   map[PluralCategory]string{PluralOne: "{0} year ago", PluralOther: "{0} years ago"},
					Auto:   map[int]string{-1: "last year", 0: "this year", 1: "next year"},
				},
				"quarter": {
					Future: map[PluralCategory]string{PluralOne: "in {0} quarter", PluralOther: "in {0} quarters"},
					Past:   map[PluralCategory]string{PluralOne: "{0} quarter ago", PluralOther: "{0} quarters ago"},
					Auto:   map[int]string{-1: "last quarter", 0: "this quarter", 1: "next quarter"},
				},
				"month": {
					Future: map[PluralCategory]string{PluralOne: "in {0} month", PluralOther: "in {0} months"},
					Past:   map[PluralCategory]string{PluralOne: "{0} month ago", PluralOther: "{0} months ago"},
					Auto:   map[int]string{-1: "last month", 0: "this month", 1: "next month"},
				},
				"week": {
					Future: map[PluralCategory]string{PluralOne: "in {0} week", PluralOther: "in {0} weeks"},
					Past:   map[PluralCategory]string{PluralOne: "{0} week ago", PluralOther: "{0} weeks ago"},
					Auto:   map[int]string{-1: "last week", 0: "this week", 1: "next week"},
				},
				"day": {
					Future: map[PluralCategory]string{PluralOne: "in {0} day", PluralOther: "in {0} days"},
					Past:   map[PluralCategory]string{PluralOne: "{0} day ago", PluralOther: "{0} days ago"},
					Auto:   map[int]string{-1: "yesterday", 0: "today", 1: "tomorrow"},
				},
				"hour": {
					Future: map[PluralCategory]string{PluralOne: "in {0} hour", PluralOther: "in {0} hours"},
					Past:   map[PluralCategory]string{PluralOne: "{0} hour ago", PluralOther: "{0} hours ago"},
				},
				"minute": {
					Future: map[PluralCategory]string{PluralOne: "in {0} minute", PluralOther: "in {0} minutes"},
					Past:   map[PluralCategory]string{PluralOne: "{0} minute ago", PluralOther: "{0} minutes ago"},
				},
				"second": {
					Future: map[PluralCategory]string{PluralOne: "in {0} second", PluralOther: "in {0} seconds"},
					Past:   map[PluralCategory]string{PluralOne: "{0} second ago", PluralOther: "{0} seconds ago"},
					Auto:   map[int]string{0: "now"},
				},
			},
			Short: map[string]RelativePatterns{
				"year": {
					Future: map[PluralCategory]string{PluralOther: "in {0} yr."},
					Past:   map[PluralCategory]string{PluralOther: "{0} yr. ago"},
					Auto:   map[int]string{-1: "last yr.", 0: "this yr.", 1: "next yr."},
				},
				"month": {
					Future: map[PluralCategory]string{PluralOther: "in {0} mo."},
					Past:   map[PluralCategory]string{PluralOther: "{0} mo. ago"},
				},
				"week": {
					Future: map[PluralCategory]string{PluralOther: "in {0} wk."},
					Past:   map[PluralCategory]string{PluralOther: "{0} wk. ago"},
				},
				"day": {
					Future: map[PluralCategory]string{PluralOne: "in {0} day", PluralOther: "in {0} days"},
					Past:   map[PluralCategory]string{PluralOne: "{0} day ago", PluralOther: "{0} days ago"},
					Auto:   map[int]string{-1: "yesterday", 0: "today", 1: "tomorrow"},
				},
				"hour": {
					Future: map[PluralCategory]string{PluralOther: "in {0} hr."},
					Past:   map[PluralCategory]string{PluralOther: "{0} hr. ago"},
				},
				"minute": {
					Future: map[PluralCategory]string{PluralOther: "in {0} min."},
					Past:   map[PluralCategory]string{PluralOther: "{0} min. ago"},
				},
				"second": {
					Future: map[PluralCategory]string{PluralOther: "in {0} sec."},
					Past:   map[PluralCategory]string{PluralOther: "{0} sec. ago"},
					Auto:   map[int]string{0: "now"},
				},
			},
		},
	},
	"es": {
		Locale: "es",
		Number: NumberRules{
			DecimalSep:       ",",
			GroupSep:         ".",
			MinusSign:        "-",
			PercentSym:       "%",
			CurrencyPattern:  "{amount} {symbol}",
			CurrencyDecimals: 2,
		},
		DateTime: DateTimeRules{
			Date: PatternSet{
				Full:   "EEEE, d 'de' MMMM 'de' y",
				Long:   "d 'de' MMMM 'de' y",
				Medium: "d MMM y",
				Short:  "d/M/yy",
			},
			Time: PatternSet{
				Full:   "H:mm:ss z",
				Long:   "H:mm:ss z",
				Medium: "H:mm:ss",
				Short:  "H:mm",
			},
			Months: []string{
				"enero", "febrero", "marzo", "abril", "mayo", "junio",
				"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
			},
			MonthsAbbrev: []string{
				"ene", "feb", "mar", "abr", "may", "jun",
				"jul", "ago", "sept", "oct", "nov", "dic",
			},
			Weekdays: []string{
				"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
			},
			WeekdaysAbbrev: []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
			DayPeriods:     [2]string{"a. m.", "p. m."},
			Use24Hour:      true,
		},
		List: ListRules{
			Conjunction: ListPatterns{
				Pair:   "{0} y {1}",
				Start:  "{0}, {1}",
				Middle: "{0}, {1}",
				End:    "{0} y {1}",
			},
			Disjunction: ListPatterns{
				Pair:   "{0} o {1}",
				Start:  "{0}, {1}",
				Middle: "{0}, {1}",
				End:    "{0} o {1}",
			},
		},
		Relative: RelativeRules{
			Long: map[string]RelativePatterns{
				"year": {
					Future: map[PluralCategory]string{PluralOne: "dentro de {0} año", PluralOther: "dentro de {0} años"},
					Past:   map[PluralCategory]string{PluralOne: "hace {0} año", PluralOther: "hace {0} años"},
					Auto:   map[int]string{-1: "el año pasado", 0: "este año", 1: "el próximo año"},
				},
				"month": {
					Future: map[PluralCategory]string{PluralOne: "dentro de {0} mes", PluralOther: "dentro de {0} meses"},
					Past:   map[PluralCategory]string{PluralOne: "hace {0} mes", PluralOther: "hace {0} meses"},
					Auto:   map[int]string{-1: "el mes pasado", 0: "este mes", 1: "el próximo mes"},
				},
				"week": {
					Future: map[PluralCategory]string{PluralOne: "dentro de {0} semana", PluralOther: "dentro de {0} semanas"},
					Past:   map[PluralCategory]string{PluralOne: "hace {0} semana", PluralOther: "hace {0} semanas"},
					Auto:   map[int]string{-1: "la semana pasada", 0: "esta semana", 1: "la próxima semana"},
				},
				"day": {
					Future: map[PluralCategory]string{PluralOne: "dentro de {0} día", PluralOther: "dentro de {0} días"},
					Past:   map[PluralCategory]string{PluralOne: "hace {0} día", PluralOther: "hace {0} días"},
					Auto:   map[int]string{-1: "ayer", 0: "hoy", 1: "mañana"},
				},
				"hour": {
					Future: map[PluralCategory]string{PluralOne: "dentro de {0} hora", PluralOther: "dentro de {0} horas"},
					Past:   map[PluralCategory]string{PluralOne: "hace {0} hora", PluralOther: "hace {0} horas"},
				},
				"minute": {
					Future: map[PluralCategory]string{PluralOne: "dentro de {0} minuto", PluralOther: "dentro de {0} minutos"},
					Past:   map[PluralCategory]string{PluralOne: "hace {0} minuto", PluralOther: "hace {0} minutos"},
				},
				"second": {
					Future: map[PluralCategory]string{PluralOne: "dentro de {0} segundo", PluralOther: "dentro de {0} segundos"},
					Past:   map[PluralCategory]string{PluralOne: "hace {0} segundo", PluralOther: "hace {0} segundos"},
					Auto:   map[int]string{0: "ahora"},
				},
			},
		},
	},
	"fr": {
		Locale: "fr",
		Number: NumberRules{
			DecimalSep:       ",",
			GroupSep:         " ",
			MinusSign:        "-",
			PercentSym:       "%",
			CurrencyPattern:  "{amount} {symbol}",
			CurrencyDecimals: 2,
		},
		DateTime: DateTimeRules{
			Date: PatternSet{
				Full:   "EEEE d MMMM y",
				Long:   "d MMMM y",
				Medium: "d MMM y",
				Short:  "dd/MM/y",
			},
			Time: PatternSet{
				Full:   "HH:mm:ss z",
				Long:   "HH:mm:ss z",
				Medium: "HH:mm:ss",
				Short:  "HH:mm",
			},
			Months: []string{
				"janvier", "février", "mars", "avril", "mai", "juin",
				"juillet", "août", "septembre", "octobre", "novembre", "décembre",
			},
			MonthsAbbrev: []string{
				"janv", "févr", "mars", "avr", "mai", "juin",
				"juil", "août", "sept", "oct", "nov", "déc",
			},
			Weekdays: []string{
				"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
			},
			WeekdaysAbbrev: []string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
			DayPeriods:     [2]string{"AM", "PM"},
			Use24Hour:      true,
		},
		List: ListRules{
			Conjunction: ListPatterns{
				Pair:   "{0} et {1}",
				Start:  "{0}, {1}",
				Middle: "{0}, {1}",
				End:    "{0} et {1}",
			},
			Disjunction: ListPatterns{
				Pair:   "{0} ou {1}",
				Start:  "{0}, {1}",
				Middle: "{0}, {1}",
				End:    "{0} ou {1}",
			},
		},
		Relative: RelativeRules{
			Long: map[string]RelativePatterns{
				"year": {
					Future: map[PluralCategory]string{PluralOne: "dans {0} an", PluralOther: "dans {0} ans"},
					Past:   map[PluralCategory]string{PluralOne: "il y a {0} an", PluralOther: "il y a {0} ans"},
					Auto:   map[int]string{-1: "l'année dernière", 0: "cette année", 1: "l'année prochaine"},
				},
				"month": {
					Future: map[PluralCategory]string{PluralOne: "dans {0} mois", PluralOther: "dans {0} mois"},
					Past:   map[PluralCategory]string{PluralOne: "il y a {0} mois", PluralOther: "il y a {0} mois"},
					Auto:   map[int]string{-1: "le mois dernier", 0: "ce mois-ci", 1: "le mois prochain"},
				},
				"week": {
					Future: map[PluralCategory]string{PluralOne: "dans {0} semaine", PluralOther: "dans {0} semaines"},
					Past:   map[PluralCategory]string{PluralOne: "il y a {0} semaine", PluralOther: "il y a {0} semaines"},
					Auto:   map[int]string{-1: "la semaine dernière", 0: "cette semaine", 1: "la semaine prochaine"},
				},
				"day": {
					Future: map[PluralCategory]string{PluralOne: "dans {0} jour", PluralOther: "dans {0} jours"},
					Past:   map[PluralCategory]string{PluralOne: "il y a {0} jour", PluralOther: "il y a {0} jours"},
					Auto:   map[int]string{-1: "hier", 0: "aujourd'hui", 1: "demain"},
				},
				"hour": {
					Future: map[PluralCategory]string{PluralOne: "dans {0} heure", PluralOther: "dans {0} heures"},
					Past:   map[PluralCategory]string{PluralOne: "il y a {0} heure", PluralOther: "il y a {0} heures"},
				},
				"minute": {
					Future: map[PluralCategory]string{PluralOne: "dans {0} minute", PluralOther: "dans {0} minutes"},
					Past:   map[PluralCategory]string{PluralOne: "il y a {0} minute", PluralOther: "il y a {0} minutes"},
				},
				"second": {
					Future: map[PluralCategory]string{PluralOne: "dans {0} seconde", PluralOther: "dans {0} secondes"},
					Past:   map[PluralCategory]string{PluralOne: "il y a {0} seconde", PluralOther: "il y a {0} secondes"},
					Auto:   map[int]string{0: "maintenant"},
				},
			},
		},
	},
	"pt": {
		Locale: "pt",
		Number: NumberRules{
			DecimalSep:       ",",
			GroupSep:         ".",
			MinusSign:        "-",
			PercentSym:       "%",
			CurrencyPattern:  "{symbol} {amount}",
			CurrencyDecimals: 2,
		},
	},
}
