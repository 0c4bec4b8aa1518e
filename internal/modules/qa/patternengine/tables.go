package patternengine

var countryContext = []string{
	"poland", "polish", "warsaw", "britain", "british", "uk", "england", "english", "london",
	"scotland", "scottish", "edinburgh", "loch ness", "wales", "welsh", "cardiff", "ireland", "irish",
	"belfast", "australia", "australian", "usa", "america", "american", "flag", "country", "countries",
	"nationality", "capital", "isles",
}

var countryEntries = []codeEntry{
	// Poland
	{code: "01 R A", country: "Poland", question: "What country is this?", answer: "It is Poland."},
	{code: "01 R B", country: "Poland", question: "Where is this flag from?", answer: "It is from Poland."},
	{code: "01 R C", country: "Poland", question: "What colors are the Polish flag?", answer: "They are red and white."},
	{code: "01 R D", country: "Poland", question: "Where are these people from?", answer: "They are from Poland."},
	{code: "01 R F", country: "Poland", question: "What nationality are they?", answer: "They are Polish."},
	{code: "01 R I", country: "Poland", question: "What is the capital of Poland?", answer: "It is Warsaw."},
	{code: "01 R K", country: "Poland", question: "What language does she speak?", answer: "She speaks Polish."},
	// Britain
	{code: "02 N A", country: "Britain", question: "Which countries are in Britain?", answer: "They are England, Scotland, and Wales."},
	{code: "02 N C", country: "Britain", question: "Where is this flag from?", answer: "It is from Britain."},
	{code: "02 N D", country: "Britain", question: "What nationality is he?", answer: "He is British."},
	{code: "02 N G", country: "Britain", question: "Who is Britain's leader?", answer: "He is King Charles."},
	{code: "02 N L", country: "Britain", question: "Where is this money from?", answer: "It is from the UK."},
	// Northern Ireland
	{code: "03 G A", country: "Northern Ireland", question: "Which country is colored pink?", answer: "It is Northern Ireland."},
	{code: "03 G C", country: "Northern Ireland", question: "What is the capital of Northern Ireland?", answer: "It is Belfast."},
	{code: "03 G D", country: "Northern Ireland", question: "What nationality is he?", answer: "He is Northern Irish."},
	// Scotland
	{code: "04 L A", country: "Scotland", question: "What country is this?", answer: "It is Scotland."},
	{code: "04 L B", country: "Scotland", question: "Where is this flag from?", answer: "It is from Scotland."},
	{code: "04 L C", country: "Scotland", question: "What is Scotland's capital?", answer: "It is Edinburgh."},
	{code: "04 L D", country: "Scotland", question: "What nationality is he?", answer: "He is Scottish."},
	{code: "04 L I", country: "Scotland", question: "Where is the Loch Ness Monster from?", answer: "It is from Scotland."},
	// England
	{code: "05 L A", country: "England", question: "What country is this?", answer: "It is England."},
	{code: "05 L B", country: "England", question: "Where is this flag from?", answer: "It is from England."},
	{code: "05 L C", country: "England", question: "What is England's capital?", answer: "It is London."},
	{code: "05 L D", country: "England", question: "What nationality is he?", answer: "He is English."},
	{code: "05 L E", country: "England", question: "Where is he from?", answer: "He is from England."},
	{code: "05 L F", country: "England", question: "Where are they from?", answer: "They are from England."},
	{code: "05 L G", country: "England", question: "Is an English breakfast big?", answer: "Yes, it is big."},
	{code: "05 L H", country: "England", question: "What type of food is it?", answer: "It is English food."},
	// Wales
	{code: "06 H A", country: "Wales", question: "What country is this?", answer: "It is Wales."},
	{code: "06 H B", country: "Wales", question: "Where is this flag from?", answer: "It is from Wales."},
	{code: "06 H C", country: "Wales", question: "Describe the Welsh flag.", answer: "It is white, green, and has a dragon."},
	{code: "06 H D", country: "Wales", question: "What is Wales's capital?", answer: "It is Cardiff."},
	{code: "06 H F", country: "Wales", question: "What nationality is he?", answer: "He is Welsh."},
	{code: "06 H", country: "Wales", question: "What language is this?", answer: "It is Welsh."},
	// Australia
	{code: "07 L A", country: "Australia", question: "What country is this?", answer: "It is Australia."},
	{code: "07 L B", country: "Australia", question: "Where is this flag from?", answer: "It is from Australia."},
	{code: "07 L D", country: "Australia", question: "What nationality is he?", answer: "He is Australian."},
	{code: "07 L H", country: "Australia", question: "Name three Australian animals.", answer: "They are kangaroos, koalas, and wombats."},
	// USA
	{code: "08 M A", country: "USA", question: "What country is this?", answer: "It is the USA."},
	{code: "08 M B", country: "USA", question: "Where is this flag from?", answer: "It is from the USA."},
	{code: "08 M C", country: "USA", question: "How many stars are on the American flag?", answer: "There are 50 stars."},
	{code: "08 M E", country: "USA", question: "What nationality is he?", answer: "He is American."},
	{code: "08 M K", country: "USA", question: "What type of food is this?", answer: "It is American food."},
	// Britain
	{code: "09 A B", country: "Britain", question: "Which countries are on the British flag?", answer: "They are England, Scotland, and Northern Ireland."},
	{code: "10 A B", country: "Britain", question: "What countries are in the British Isles?", answer: "They are the UK and Ireland."},
}

var gadgetContext = []string{
	"phone", "phones", "mobile", "charger", "chargers", "battery", "headphones", "earphones", "earbuds",
	"speaker", "speakers", "laptop", "laptops", "computer", "computers", "internet", "console", "consoles",
	"gaming", "camera", "cameras", "photos", "selfies", "usb", "e-book", "ebook", "printer", "remote", "gadget", "gadgets",
}

var gadgetEntries = []codeEntry{
	// mobile phones
	{code: "01 A A", question: "What is this?", answer: "It is a phone."},
	{code: "01 A B", question: "Do you have a phone?", answer: "Yes, I have a phone / No, I do not have a phone."},
	{code: "01 A C", question: "What phone do you have?", answer: "I have a [iPhone/Samsung/Android]."},
	{code: "01 A D", question: "Who has a phone in your house?", answer: "My [mother/father/sister] has a phone."},
	{code: "01 A E", question: "Are these old or new phones?", answer: "They are old/new phones."},
	{code: "01 A F", question: "Do you shop using your phone?", answer: "Yes, I shop using my phone / No, I do not."},
	{code: "01 A G", question: "Do you play games on your phone?", answer: "Yes, I play games / No, I do not."},
	{code: "01 A H", question: "Are mobile phones cheap or expensive?", answer: "They are cheap/expensive."},
	{code: "01 A I", question: "Do you take selfies with your phone?", answer: "Yes, I take selfies / No, I do not."},
	{code: "01 A J", question: "Do you listen to music with your phone?", answer: "Yes, I listen to music / No, I do not."},
	{code: "01 A K", question: "Do you take photos with your phone?", answer: "Yes, I take photos / No, I do not."},
	// chargers & batteries
	{code: "02 A A", question: "What is this?", answer: "It is a charger."},
	{code: "02 A B", question: "Do you have a charger?", answer: "Yes, I have a charger / No, I do not."},
	{code: "02 A C", question: "Do you have a wireless charger?", answer: "Yes, I do / No, I do not."},
	{code: "02 A D", question: "How long does your battery last?", answer: "It lasts [1 hour/5 hours]."},
	{code: "02 A E", question: "What color is your charger?", answer: "It is [red/black/white]."},
	{code: "02 A F", question: "Is your phone battery full or empty?", answer: "It is full/empty."},
	{code: "02 A I", question: "How long does it take to charge your phone?", answer: "It takes [30 minutes/2 hours]."},
	{code: "02 B B", question: "How often do you charge your phone?", answer: "I charge it [once/twice] a day."},
	{code: "02 B C", question: "Is your charger fast or slow?", answer: "It is fast/slow."},
	// headphones & earphones
	{code: "03 A A", question: "What are these?", answer: "They are headphones."},
	{code: "03 A C", question: "What are these?", answer: "They are earphones."},
	{code: "03 A E", question: "Do you prefer headphones, earbuds, or earphones?", answer: "I prefer [headphones/earbuds/earphones]."},
	{code: "03 A F", question: "Do you prefer wireless or wired earphones?", answer: "I prefer wireless/wired earphones."},
	{code: "03 A H", question: "What color headphones do you like?", answer: "I like [blue/red/black] headphones."},
	{code: "03 A I", question: "Are these headphones big or small?", answer: "They are big/small."},
	{code: "03 C A", question: "What is he doing?", answer: "He is listening to music with headphones."},
	{code: "03 C D", question: "Do you listen to music with headphones every day?", answer: "Yes, I do / No, I do not."},
	{code: "03 C E", question: "Do you listen to music while studying?", answer: "Yes, I do / No, I do not."},
	{code: "03 C H", question: "What music do you listen to?", answer: "I listen to [pop/rock/classical] music."},
	// speakers
	{code: "04 A A", question: "What are these?", answer: "They are speakers."},
	{code: "04 A C", question: "Do you have a mini speaker at home?", answer: "Yes, I do / No, I do not."},
	{code: "04 A H", question: "Do you prefer speakers or headphones?", answer: "I prefer speakers/headphones."},
	{code: "04 A J", question: "Does your phone have speakers?", answer: "Yes, it does / No, it does not."},
	{code: "04 A M", question: "Where are the speakers in a car?", answer: "They are [in the doors/on the dashboard]."},
	// computers & laptops
	{code: "05 A A", question: "What is this?", answer: "It is a laptop."},
	{code: "05 A C", question: "Do you have a laptop in your bedroom?", answer: "Yes, I do / No, I do not."},
	{code: "05 A E", question: "Do you have a gaming laptop?", answer: "Yes, I do / No, I do not."},
	{code: "05 A F", question: "Do you prefer a laptop or a computer?", answer: "I prefer a laptop/computer."},
	{code: "05 A L", question: "Do you watch films on your laptop?", answer: "Yes, I do / No, I do not."},
	{code: "05 B B", question: "Do you surf the internet every day?", answer: "Yes, I do / No, I do not."},
	{code: "05 B G", question: "Do you surf the internet with your phone?", answer: "Yes, I do / No, I do not."},
	// game consoles
	{code: "06 A B", question: "What is this?", answer: "It is a game console."},
	{code: "06 A E", question: "Do you have a game console at home?", answer: "Yes, I do / No, I do not."},
	{code: "06 B B", question: "What games do you play?", answer: "I play [Fortnite/Minecraft/Roblox]."},
	{code: "06 B D", question: "Do you prefer gaming on a console or laptop?", answer: "I prefer a console/laptop."},
	// cameras
	{code: "07 A B", question: "What type of camera is this?", answer: "It is a digital camera."},
	{code: "07 A G", question: "Do you prefer a digital or phone camera?", answer: "I prefer a digital/phone camera."},
	{code: "07 B A", question: "What is he doing?", answer: "He is taking photos."},
	{code: "07 B D", question: "Are you good at taking photos?", answer: "Yes, I am / No, I am not."},
	// other gadgets
	{code: "08 A A", question: "What is this?", answer: "It is a USB drive."},
	{code: "08 A C", question: "How big is your USB drive?", answer: "It is [32GB/64GB]."},
	{code: "09 A A", question: "What is this?", answer: "It is an e-book reader."},
	{code: "09 A C", question: "Do you prefer e-books or paper books?", answer: "I prefer e-books/paper books."},
	{code: "10 C AA", question: "What is this?", answer: "It is a printer."},
	{code: "12 C AA", question: "What is this?", answer: "It is a remote control."},
}
