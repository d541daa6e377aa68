package passport

// Built-in reference lists for name correction. Curated common given names
// and surnames across the markets the agency serves; uppercase, ASCII only,
// matching the recognition whitelist.

var defaultGivenNames = []string{
	"JOHN", "JAMES", "ROBERT", "MICHAEL", "WILLIAM", "DAVID", "RICHARD",
	"JOSEPH", "THOMAS", "CHARLES", "CHRISTOPHER", "DANIEL", "MATTHEW",
	"ANTHONY", "MARK", "DONALD", "STEVEN", "PAUL", "ANDREW", "JOSHUA",
	"KENNETH", "KEVIN", "BRIAN", "GEORGE", "TIMOTHY", "RONALD", "EDWARD",
	"JASON", "JEFFREY", "RYAN", "JACOB", "GARY", "NICHOLAS", "ERIC",
	"JONATHAN", "STEPHEN", "LARRY", "JUSTIN", "SCOTT", "BRANDON", "BENJAMIN",
	"SAMUEL", "GREGORY", "ALEXANDER", "FRANK", "PATRICK", "RAYMOND", "JACK",
	"DENNIS", "JERRY", "TYLER", "AARON", "JOSE", "ADAM", "NATHAN", "HENRY",
	"PETER", "ZACHARY", "DOUGLAS", "KYLE", "NOAH", "ETHAN", "LUCAS", "OLIVER",
	"LIAM", "MASON", "LOGAN", "ELIJAH", "CARLOS", "JUAN", "LUIS", "MIGUEL",
	"JORGE", "PEDRO", "FRANCISCO", "ANTONIO", "MANUEL", "RICARDO", "FERNANDO",
	"ALEJANDRO", "JAVIER", "DIEGO", "RAFAEL", "MARTIN", "ANDRES", "EDUARDO",
	"ROBERTO", "PABLO", "SERGIO", "ALBERTO", "MARIO", "ENRIQUE", "OSCAR",
	"MARY", "PATRICIA", "JENNIFER", "LINDA", "ELIZABETH", "BARBARA", "SUSAN",
	"JESSICA", "SARAH", "KAREN", "LISA", "NANCY", "BETTY", "MARGARET",
	"SANDRA", "ASHLEY", "KIMBERLY", "EMILY", "DONNA", "MICHELLE", "CAROL",
	"AMANDA", "DOROTHY", "MELISSA", "DEBORAH", "STEPHANIE", "REBECCA",
	"SHARON", "LAURA", "CYNTHIA", "KATHLEEN", "AMY", "ANGELA", "SHIRLEY",
	"ANNA", "RUTH", "BRENDA", "PAMELA", "NICOLE", "KATHERINE", "VIRGINIA",
	"CATHERINE", "CHRISTINE", "SAMANTHA", "DEBRA", "RACHEL", "CAROLYN",
	"JANET", "EMMA", "MARIA", "HEATHER", "DIANE", "JULIE", "JOYCE",
	"VICTORIA", "OLIVIA", "KELLY", "CHRISTINA", "LAUREN", "JOAN", "EVELYN",
	"JUDITH", "MEGAN", "ANDREA", "CHERYL", "HANNAH", "JACQUELINE", "MARTHA",
	"GLORIA", "TERESA", "ANN", "SARA", "MADISON", "FRANCES", "KATHRYN",
	"JANICE", "JEAN", "ABIGAIL", "ALICE", "JULIA", "JUDY", "SOFIA", "GRACE",
	"DENISE", "AMBER", "DANIELLE", "MARILYN", "BEATRICE", "ISABELLA",
	"THERESA", "DIANA", "NATALIE", "BRITTANY", "CHARLOTTE", "CARMEN",
	"ROSA", "LUCIA", "ELENA", "ADRIANA", "GABRIELA", "VALENTINA", "CAMILA",
	"PAULA", "CLAUDIA", "VERONICA", "SILVIA", "MONICA", "PILAR",
	"AHMED", "MOHAMMED", "ALI", "OMAR", "HASSAN", "IBRAHIM", "YUSUF",
	"HIROSHI", "TAKASHI", "KENJI", "YUKI", "WEI", "JING", "LI", "CHEN",
	"RAVI", "ARJUN", "PRIYA", "ANIL", "SANJAY", "DEEPAK", "VIKRAM",
}

var defaultSurnames = []string{
	"SMITH", "JOHNSON", "WILLIAMS", "BROWN", "JONES", "GARCIA", "MILLER",
	"DAVIS", "RODRIGUEZ", "MARTINEZ", "HERNANDEZ", "LOPEZ", "GONZALEZ",
	"WILSON", "ANDERSON", "THOMAS", "TAYLOR", "MOORE", "JACKSON", "MARTIN",
	"LEE", "PEREZ", "THOMPSON", "WHITE", "HARRIS", "SANCHEZ", "CLARK",
	"RAMIREZ", "LEWIS", "ROBINSON", "WALKER", "YOUNG", "ALLEN", "KING",
	"WRIGHT", "SCOTT", "TORRES", "NGUYEN", "HILL", "FLORES", "GREEN",
	"ADAMS", "NELSON", "BAKER", "HALL", "RIVERA", "CAMPBELL", "MITCHELL",
	"CARTER", "ROBERTS", "GOMEZ", "PHILLIPS", "EVANS", "TURNER", "DIAZ",
	"PARKER", "CRUZ", "EDWARDS", "COLLINS", "REYES", "STEWART", "MORRIS",
	"MORALES", "MURPHY", "COOK", "ROGERS", "GUTIERREZ", "ORTIZ", "MORGAN",
	"COOPER", "PETERSON", "BAILEY", "REED", "KELLY", "HOWARD", "RAMOS",
	"KIM", "COX", "WARD", "RICHARDSON", "WATSON", "BROOKS", "CHAVEZ",
	"WOOD", "JAMES", "BENNETT", "GRAY", "MENDOZA", "RUIZ", "HUGHES",
	"PRICE", "ALVAREZ", "CASTILLO", "SANDERS", "PATEL", "MYERS", "LONG",
	"ROSS", "FOSTER", "JIMENEZ", "POWELL", "JENKINS", "PERRY", "RUSSELL",
	"SULLIVAN", "BELL", "COLEMAN", "BUTLER", "HENDERSON", "BARNES",
	"GONZALES", "FISHER", "VASQUEZ", "SIMMONS", "ROMERO", "JORDAN",
	"PATTERSON", "ALEXANDER", "HAMILTON", "GRAHAM", "REYNOLDS", "GRIFFIN",
	"WALLACE", "MORENO", "WEST", "COLE", "HAYES", "BRYANT", "HERRERA",
	"GIBSON", "ELLIS", "TRAN", "MEDINA", "AGUILAR", "STEVENS", "MURRAY",
	"FORD", "CASTRO", "MARSHALL", "OWENS", "HARRISON", "FERNANDEZ",
	"MCDONALD", "WOODS", "WASHINGTON", "KENNEDY", "WELLS", "VARGAS",
	"HENRY", "CHEN", "FREEMAN", "WEBB", "TUCKER", "GUZMAN", "BURNS",
	"CRAWFORD", "OLSON", "SIMPSON", "PORTER", "HUNTER", "GORDON", "MENDEZ",
	"SILVA", "SHAW", "SNYDER", "MASON", "DIXON", "MUNOZ", "HUNT", "HICKS",
	"HOLMES", "PALMER", "WAGNER", "BLACK", "ROBERTSON", "BOYD", "ROSE",
	"STONE", "SALAZAR", "FOX", "WARREN", "MILLS", "MEYER", "RICE",
	"SCHMIDT", "GARZA", "DANIELS", "FERGUSON", "NICHOLS", "STEPHENS",
	"SOTO", "WEAVER", "RYAN", "GARDNER", "PAYNE", "GRANT", "DUNN",
	"KELLEY", "SPENCER", "HAWKINS", "ARNOLD", "PIERCE", "VAZQUEZ",
	"HANSEN", "PETERS", "SANTOS", "HART", "BRADLEY", "KNIGHT", "ELLIOTT",
	"CUNNINGHAM", "DUNCAN", "ARMSTRONG", "HUDSON", "CARROLL", "LANE",
	"RILEY", "ANDREWS", "ALVARADO", "RAY", "DELGADO", "BERRY", "PERKINS",
	"HOFFMAN", "JOHNSTON", "MATTHEWS", "PENA", "RICHARDS", "CONTRERAS",
	"WILLIS", "CARPENTER", "LAWRENCE", "SANDOVAL", "GUERRERO", "GEORGE",
	"CHAPMAN", "RIOS", "ESTRADA", "ORTEGA", "WATKINS", "GREENE", "NUNEZ",
	"WHEELER", "VALDEZ", "HARPER", "BURKE", "LARSON", "SANTIAGO",
	"MALDONADO", "MORRISON", "FRANKLIN", "CARLSON", "AUSTIN", "DOMINGUEZ",
	"CARR", "LAWSON", "JACOBS", "OBRIEN", "LYNCH", "SINGH", "VEGA",
	"BISHOP", "MONTGOMERY", "OLIVER", "JENSEN", "HARVEY", "WILLIAMSON",
	"GILBERT", "DEAN", "SIMS", "ESPINOZA", "HOWELL", "LI", "WONG", "REID",
	"HANSON", "LE", "MCCOY", "GARRETT", "BURTON", "FULLER", "WANG", "WEBER",
	"WELCH", "ROJAS", "LUCAS", "MARQUEZ", "FIELDS", "PARK", "YANG",
	"LITTLE", "BANKS", "PADILLA", "DAY", "WALSH", "BOWMAN", "SCHULTZ",
	"LUNA", "FOWLER", "MEJIA", "DAVIDSON", "ACOSTA", "BREWER", "MAY",
	"HOLLAND", "JUAREZ", "NEWMAN", "PEARSON", "CURTIS", "CORTEZ", "DOUGLAS",
	"SCHNEIDER", "JOSEPH", "BARRETT", "NAVARRO", "FIGUEROA", "KELLER",
	"AVILA", "WADE", "MOLINA", "STANLEY", "HOPKINS", "CAMPOS", "BARNETT",
	"BATES", "CHAMBERS", "CALDWELL", "BECK", "LAMBERT", "MIRANDA", "BYRD",
	"CRAIG", "AYALA", "LOWE", "FRAZIER", "POWERS", "NEAL", "LEONARD",
	"GREGORY", "CARRILLO", "SUTTON", "FLEMING", "RHODES", "SHELTON",
	"SCHWARTZ", "NORRIS", "JENNINGS", "WATTS", "DURAN", "WALTERS", "COHEN",
	"MCDANIEL", "MORAN", "PARKS", "STEELE", "VAUGHN", "BECKER", "HOLT",
	"DELEON", "BARKER", "TERRY", "HALE", "LEON", "HAIL", "BENSON",
	"HAYNES", "HORTON", "MIRELES", "IVANOV", "PETROV", "KOWALSKI", "NOWAK",
	"MULLER", "SCHMITT", "FISCHER", "KOCH", "RICHTER", "KLEIN", "WOLF",
	"ROSSI", "RUSSO", "FERRARI", "ESPOSITO", "BIANCHI", "ROMANO", "COLOMBO",
	"SATO", "SUZUKI", "TAKAHASHI", "TANAKA", "WATANABE", "ITO", "YAMAMOTO",
	"SHARMA", "KUMAR", "GUPTA", "MEHTA", "KAPOOR", "REDDY", "NAIR",
}

// defaultCorrections maps recognizer outputs seen repeatedly in production
// scans to their correct form. Reviewed and deduplicated; add entries only
// with a confirmed sample.
var defaultCorrections = map[string]string{
	"J0HN":     "JOHN",
	"J0SEPH":   "JOSEPH",
	"0LIVER":   "OLIVER",
	"0SCAR":    "OSCAR",
	"MAR1A":    "MARIA",
	"S0FIA":    "SOFIA",
	"5MITH":    "SMITH",
	"SM1TH":    "SMITH",
	"GARC1A":   "GARCIA",
	"MART1NEZ": "MARTINEZ",
	"W1LLIAMS": "WILLIAMS",
	"BR0WN":    "BROWN",
	"J0NES":    "JONES",
	"L0PEZ":    "LOPEZ",
	"G0MEZ":    "GOMEZ",
}
