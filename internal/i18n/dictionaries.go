package i18n

var dictionaries = map[Locale]Dictionary{
	LocaleRO: {
		CalendarEventPrefix: "Nunta Giorgia & István",
		SectionDate:         "Sâmbătă, 11 Iulie 2026",
		Ceremony: EventContent{
			Title:       "Ceremonia religioasă",
			Time:        "1:00 PM",
			Description: "Cu emoție și recunoștință, vom pași în fața altarului Bisericii Cetății din Târgu Mureș pentru a ne uni sufletele.",
			Location:    "Biserica Reformată din Cetate",
			Address:     "Piața Bernády György, Târgu Mureș, România",
		},
		Celebration: EventContent{
			Title:       "Primirea invitaților",
			Time:        "2:00 PM",
			Description: "Vom continua această zi specială la Hotel Privo, unde vă invităm să petrecem împreună momente de neuitat.",
			Location:    "Hotel Privo",
			Address:     "Strada Gheorghe Doja, Târgu Mureș, România",
		},
	},
	LocaleHU: {
		CalendarEventPrefix: "Giorgia & István esküvője",
		SectionDate:         "2026. július 11., szombat",
		Ceremony: EventContent{
			Title:       "Egyházi szertartás",
			Time:        "13:00",
			Description: "Meghatottsággal és hálával lépünk az oltár elé a Marosvásárhelyi Vártemplomban, hogy egybeforrasszuk életünket.",
			Location:    "Vártemplom",
			Address:     "Bernády György tér, Marosvásárhely, Románia",
		},
		Celebration: EventContent{
			Title:       "Vendégek fogadása",
			Time:        "14:00",
			Description: "Ezt a különleges napot a Hotel Privóban folytatjuk, ahová szeretettel várunk, hogy együtt töltsünk felejthetetlen pillanatokat.",
			Location:    "Hotel Privo",
			Address:     "Gheorghe Doja utca, Marosvásárhely, Románia",
		},
	},
	LocaleEN: {
		CalendarEventPrefix: "Giorgia & István's Wedding",
		SectionDate:         "Saturday, July 11, 2026",
		Ceremony: EventContent{
			Title:       "Church ceremony",
			Time:        "1:00 PM",
			Description: "With hearts full of joy, we will exchange our vows at the historic Fortress Church in Târgu Mureș.",
			Location:    "Reformed Fortress Church",
			Address:     "Piața Bernády György, Târgu Mureș, Romania",
		},
		Celebration: EventContent{
			Title:       "Guest reception",
			Time:        "2:00 PM",
			Description: "We will continue this special day at Hotel Privo, where we invite you to share unforgettable moments together.",
			Location:    "Hotel Privo",
			Address:     "Strada Gheorghe Doja, Târgu Mureș, Romania",
		},
	},
	LocaleDE: {
		CalendarEventPrefix: "Hochzeit von Giorgia & István",
		SectionDate:         "Samstag, 11. Juli 2026",
		Ceremony: EventContent{
			Title:       "Kirchliche Trauung",
			Time:        "13:00 Uhr",
			Description: "Voller Freude und Dankbarkeit treten wir vor den Altar der Burgkirche in Târgu Mureș, um uns das Ja-Wort zu geben.",
			Location:    "Reformierte Burgkirche",
			Address:     "Piața Bernády György, Târgu Mureș, Rumänien",
		},
		Celebration: EventContent{
			Title:       "Gästeempfang",
			Time:        "14:00 Uhr",
			Description: "Wir setzen diesen besonderen Tag im Hotel Privo fort, wo wir euch einladen, gemeinsam unvergessliche Momente zu erleben.",
			Location:    "Hotel Privo",
			Address:     "Strada Gheorghe Doja, Târgu Mureș, Rumänien",
		},
	},
	LocaleFR: {
		CalendarEventPrefix: "Mariage de Giorgia & István",
		SectionDate:         "Samedi 11 juillet 2026",
		Ceremony: EventContent{
			Title:       "Cérémonie religieuse",
			Time:        "13h00",
			Description: "Avec émotion et gratitude, nous échangerons nos vœux devant l’autel de l’Église de la Forteresse à Târgu Mureș.",
			Location:    "Église Réformée de la Forteresse",
			Address:     "Piața Bernády György, Târgu Mureș, Roumanie",
		},
		Celebration: EventContent{
			Title:       "Accueil des invités",
			Time:        "14h00",
			Description: "Nous poursuivrons cette journée spéciale à l’Hôtel Privo, où nous vous invitons à partager ensemble des moments inoubliables.",
			Location:    "Hôtel Privo",
			Address:     "Strada Gheorghe Doja, Târgu Mureș, Roumanie",
		},
	},
}
