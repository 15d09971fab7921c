package corpus

var entries = []Entry{
	{ID: "w001",
		EN: Text{Word: "petrichor", Def: "The pleasant earthy smell that follows rain falling on dry ground."},
		ES: Text{Word: "petricor", Def: "El olor agradable a tierra que deja la lluvia al caer sobre suelo seco."}},
	{ID: "w002",
		EN: Text{Word: "borborygmus", Def: "A rumbling noise produced by gas moving through the intestines."},
		ES: Text{Word: "borborigmo", Def: "Ruido producido por el movimiento de gases en el intestino."}},
	{ID: "w003",
		EN: Text{Word: "zugzwang", Def: "A situation in which any possible move worsens one's position."},
		ES: Text{Word: "zugzwang", Def: "Situación en la que cualquier movimiento posible empeora la propia posición."}},
	{ID: "w004",
		EN: Text{Word: "defenestration", Def: "The act of throwing someone or something out of a window."},
		ES: Text{Word: "defenestración", Def: "Acción de arrojar a alguien o algo por una ventana."}},
	{ID: "w005",
		EN: Text{Word: "nudiustertian", Def: "Relating to the day before yesterday."},
		ES: Text{Word: "anteayer", Def: "Relativo al día anterior al de ayer."}},
	{ID: "w006",
		EN: Text{Word: "tmesis", Def: "Insertion of a word into the middle of another word for emphasis."},
		ES: Text{Word: "tmesis", Def: "Inserción de una palabra en medio de otra para dar énfasis."}},
	{ID: "w007",
		EN: Text{Word: "widdershins", Def: "In a direction contrary to the sun's course; counterclockwise."},
		ES: Text{Word: "levógiro", Def: "En dirección contraria al curso del sol; en sentido antihorario."}},
	{ID: "w008",
		EN: Text{Word: "callipygian", Def: "Having well-shaped buttocks."},
		ES: Text{Word: "calipigio", Def: "Que tiene nalgas bien formadas."}},
	{ID: "w009",
		EN: Text{Word: "ultracrepidarian", Def: "A person who gives opinions on matters beyond their knowledge."},
		ES: Text{Word: "ultracrepidiano", Def: "Persona que opina sobre asuntos que desconoce."}},
	{ID: "w010",
		EN: Text{Word: "apricity", Def: "The warmth of the sun felt in winter."},
		ES: Text{Word: "apricidad", Def: "El calor del sol que se siente en invierno."}},
	{ID: "w011",
		EN: Text{Word: "mumpsimus", Def: "A stubborn refusal to correct a habit known to be wrong."},
		ES: Text{Word: "mumpsimus", Def: "Negativa obstinada a corregir una costumbre que se sabe errónea."}},
	{ID: "w012",
		EN: Text{Word: "sesquipedalian", Def: "Given to using long words; polysyllabic."},
		ES: Text{Word: "sesquipedálico", Def: "Aficionado a usar palabras largas; polisilábico."}},
	{ID: "w013",
		EN: Text{Word: "absquatulate", Def: "To leave abruptly; to flee with something."},
		ES: Text{Word: "escabullirse", Def: "Marcharse de forma abrupta; huir llevándose algo."}},
	{ID: "w014",
		EN: Text{Word: "hircine", Def: "Of or resembling a goat, especially in smell."},
		ES: Text{Word: "hircino", Def: "Propio de la cabra o semejante a ella, especialmente en el olor."}},
	{ID: "w015",
		EN: Text{Word: "gongoozler", Def: "A person who idly watches activity on a canal."},
		ES: Text{Word: "mirón de canal", Def: "Persona que observa ociosamente la actividad de un canal."}},
	{ID: "w016",
		EN: Text{Word: "quincunx", Def: "An arrangement of five objects with four at the corners and one in the center."},
		ES: Text{Word: "quincunce", Def: "Disposición de cinco objetos con cuatro en las esquinas y uno en el centro."}},
	{ID: "w017",
		EN: Text{Word: "hippopotomonstrosesquippedaliophobia", Def: "An ironic term for the fear of long words."},
		ES: Text{Word: "hipopotomonstrosesquipedaliofobia", Def: "Término irónico para el miedo a las palabras largas."}},
	{ID: "w018",
		EN: Text{Word: "snollygoster", Def: "A shrewd, unprincipled person, especially a politician."},
		ES: Text{Word: "trapisondista", Def: "Persona astuta y sin principios, especialmente un político."}},
	{ID: "w019",
		EN: Text{Word: "psithurism", Def: "The sound of wind whispering through trees."},
		ES: Text{Word: "psiturismo", Def: "El sonido del viento susurrando entre los árboles."}},
	{ID: "w020",
		EN: Text{Word: "lethologica", Def: "The inability to remember a particular word."},
		ES: Text{Word: "letológica", Def: "Incapacidad de recordar una palabra concreta."}},
	{ID: "w021",
		EN: Text{Word: "vexillology", Def: "The study of flags."},
		ES: Text{Word: "vexilología", Def: "El estudio de las banderas."}},
	{ID: "w022",
		EN: Text{Word: "operose", Def: "Involving or displaying much industry or effort; laborious."},
		ES: Text{Word: "operoso", Def: "Que implica o muestra mucho esfuerzo; laborioso."}},
	{ID: "w023",
		EN: Text{Word: "cachinnate", Def: "To laugh loudly and immoderately."},
		ES: Text{Word: "carcajear", Def: "Reír a carcajadas, de forma ruidosa e inmoderada."}},
	{ID: "w024",
		EN: Text{Word: "funambulist", Def: "A tightrope walker."},
		ES: Text{Word: "funámbulo", Def: "Persona que camina sobre una cuerda floja."}},
}
