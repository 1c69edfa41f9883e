package locale

// countries is the registry table. Order is display order; the first
// entry doubles as the fallback locale.
var countries = []Country{
	{
		Code:        "US",
		Name:        "United States",
		DialPrefix:  "+1",
		PhoneFormat: "+1 (XXX) XXX-XXXX",
		NoZeroLead:  true,
		FirstNames: []string{
			"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
			"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
			"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Ashley",
		},
		LastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
			"Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Moore", "Jackson", "Martin",
			"Lee", "Thompson", "White", "Harris", "Clark", "Lewis", "Walker", "Young",
		},
	},
	{
		Code:        "GB",
		Name:        "United Kingdom",
		DialPrefix:  "+44",
		PhoneFormat: "+44 7XXX XXXXXX",
		FirstNames: []string{
			"Oliver", "Amelia", "George", "Isla", "Harry", "Olivia", "Jack", "Emily",
			"Charlie", "Sophie", "Thomas", "Grace", "Oscar", "Freya", "Alfie", "Poppy",
		},
		LastNames: []string{
			"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Johnson", "Davies",
			"Robinson", "Wright", "Thompson", "Evans", "Walker", "White", "Hughes", "Edwards",
		},
	},
	{
		Code:        "DE",
		Name:        "Germany",
		DialPrefix:  "+49",
		PhoneFormat: "+49 17X XXXXXXX",
		FirstNames: []string{
			"Lukas", "Hannah", "Jonas", "Lena", "Finn", "Mia", "Jürgen", "Sören",
			"Maximilian", "Emilia", "Felix", "Marie", "Björn", "Käthe", "Paul", "Greta",
		},
		LastNames: []string{
			"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
			"Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Richter", "Klöß", "Jäger",
		},
	},
	{
		Code:        "FR",
		Name:        "France",
		DialPrefix:  "+33",
		PhoneFormat: "+33 6 XX XX XX XX",
		FirstNames: []string{
			"Louis", "Emma", "Gabriel", "Jade", "Raphaël", "Louise", "Léo", "Chloé",
			"Hugo", "Alice", "Jules", "Inès", "Théo", "Léa", "François", "Camille",
		},
		LastNames: []string{
			"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand",
			"Leroy", "Moreau", "Lefèvre", "Garnier", "Fournier", "Girard", "Bonnet", "Français",
		},
	},
	{
		Code:        "ES",
		Name:        "Spain",
		DialPrefix:  "+34",
		PhoneFormat: "+34 6XX XXX XXX",
		FirstNames: []string{
			"Hugo", "Lucía", "Martín", "Sofía", "Pablo", "María", "Álvaro", "Paula",
			"Adrián", "Daniela", "José", "Carmen", "Diego", "Valeria", "Iñigo", "Alba",
		},
		LastNames: []string{
			"García", "Fernández", "González", "Rodríguez", "López", "Martínez", "Sánchez", "Pérez",
			"Gómez", "Martín", "Jiménez", "Ruiz", "Hernández", "Díaz", "Muñoz", "Álvarez",
		},
	},
	{
		Code:        "IT",
		Name:        "Italy",
		DialPrefix:  "+39",
		PhoneFormat: "+39 3XX XXX XXXX",
		FirstNames: []string{
			"Leonardo", "Sofia", "Francesco", "Giulia", "Alessandro", "Aurora", "Lorenzo", "Alice",
			"Matteo", "Ginevra", "Tommaso", "Emma", "Gabriele", "Greta", "Niccolò", "Beatrice",
		},
		LastNames: []string{
			"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci",
			"Marino", "Greco", "Bruno", "Gallo", "Conti", "De Luca", "Mancini", "Costa",
		},
	},
	{
		Code:        "NL",
		Name:        "Netherlands",
		DialPrefix:  "+31",
		PhoneFormat: "+31 6 XXXX XXXX",
		FirstNames: []string{
			"Daan", "Emma", "Noah", "Julia", "Sem", "Mila", "Lucas", "Tess",
			"Finn", "Sophie", "Levi", "Zoë", "Luuk", "Sara", "Bram", "Evi",
		},
		LastNames: []string{
			"de Jong", "Jansen", "de Vries", "van den Berg", "van Dijk", "Bakker", "Visser", "Smit",
			"Meijer", "de Boer", "Mulder", "de Groot", "Bos", "Vos", "Peters", "Hendriks",
		},
	},
	{
		Code:        "SE",
		Name:        "Sweden",
		DialPrefix:  "+46",
		PhoneFormat: "+46 7X XXX XX XX",
		FirstNames: []string{
			"William", "Alice", "Liam", "Maja", "Noah", "Elsa", "Hugo", "Astrid",
			"Oliver", "Wilma", "Åke", "Freja", "Björn", "Saga", "Nils", "Ebba",
		},
		LastNames: []string{
			"Andersson", "Johansson", "Karlsson", "Nilsson", "Eriksson", "Larsson", "Olsson", "Persson",
			"Svensson", "Gustafsson", "Sjöberg", "Lindqvist", "Åberg", "Bergström", "Lundgren", "Öström",
		},
	},
	{
		Code:        "PL",
		Name:        "Poland",
		DialPrefix:  "+48",
		PhoneFormat: "+48 XXX XXX XXX",
		NoZeroLead:  true,
		FirstNames: []string{
			"Jakub", "Zuzanna", "Antoni", "Julia", "Jan", "Maja", "Szymon", "Hanna",
			"Aleksander", "Lena", "Franciszek", "Alicja", "Łukasz", "Zofia", "Michał", "Oliwia",
		},
		LastNames: []string{
			"Nowak", "Kowalski", "Wiśniewski", "Wójcik", "Kowalczyk", "Kamiński", "Lewandowski", "Zieliński",
			"Szymański", "Woźniak", "Dąbrowski", "Kozłowski", "Jankowski", "Mazur", "Wojciechowski", "Król",
		},
	},
	{
		Code:        "UA",
		Name:        "Ukraine",
		DialPrefix:  "+380",
		PhoneFormat: "+380 XX XXX XXXX",
		NoZeroLead:  true,
		FirstNames: []string{
			"Oleksandr", "Sofiia", "Maksym", "Anna", "Artem", "Mariia", "Dmytro", "Viktoriia",
			"Andrii", "Solomiia", "Denys", "Polina", "Bohdan", "Veronika", "Taras", "Kateryna",
		},
		LastNames: []string{
			"Shevchenko", "Kovalenko", "Bondarenko", "Tkachenko", "Melnyk", "Kravchenko", "Oliinyk", "Koval",
			"Shevchuk", "Polishchuk", "Boiko", "Lysenko", "Savchenko", "Rudenko", "Marchenko", "Moroz",
		},
	},
	{
		Code:        "BR",
		Name:        "Brazil",
		DialPrefix:  "+55",
		PhoneFormat: "+55 (XX) 9XXXX-XXXX",
		NoZeroLead:  true,
		FirstNames: []string{
			"Miguel", "Helena", "Arthur", "Alice", "Gael", "Laura", "Théo", "Valentina",
			"Heitor", "Sophia", "Davi", "Isabella", "João", "Luísa", "Pedro", "Cecília",
		},
		LastNames: []string{
			"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira",
			"Lima", "Gomes", "Ribeiro", "Carvalho", "Araújo", "Barbosa", "Martins", "Conceição",
		},
	},
	{
		Code:        "JP",
		Name:        "Japan",
		DialPrefix:  "+81",
		PhoneFormat: "+81 90-XXXX-XXXX",
		FirstNames: []string{
			"Haruto", "Yui", "Sota", "Aoi", "Yuto", "Hina", "Hayato", "Sakura",
			"Ren", "Mio", "Kaito", "Rin", "Riku", "Mei", "Daiki", "Kokona",
		},
		LastNames: []string{
			"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito", "Yamamoto", "Nakamura",
			"Kobayashi", "Kato", "Yoshida", "Yamada", "Sasaki", "Yamaguchi", "Matsumoto", "Inoue",
		},
	},
}
