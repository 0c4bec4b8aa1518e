package legacy

// exactMappings is keyed by the exported filename, extension included.
var exactMappings = map[string]mapping{
	// classroom rules
	"02 N A is the Dog Happy or Sad.gif": {"Is the dog happy or sad?", "The dog is happy. / The dog is sad."},
	"02 N B is the Baby Happy or Sad.gif": {"Is the baby happy or sad?", "The baby is happy. / The baby is sad."},
	"02 N C is the Monster Sad or Happy.gif": {"Is the monster sad or happy?", "The monster is sad. / The monster is happy."},
	"02 O A is the Man Sitting Down or Standing Up.gif": {"Is the man sitting down or standing up?", "The man is sitting down. / The man is standing up."},
	"02 O B is the Lady Sitting Down or Standing Up.gif": {"Is the lady sitting down or standing up?", "The lady is sitting down. / The lady is standing up."},
	"02 O C is the Man Standing Up or Running.gif": {"Is the man standing up or running?", "The man is standing up. / The man is running."},
	"02 P A What Does the Teacher Say.gif": {"What does the teacher say?", "The teacher says 'Be quiet.'"},
	"02 P B What Does the Teacher Say.gif": {"What does the teacher say?", "The teacher says 'Sit down.'"},
	"02 P C What Does the Teacher Say.gif": {"What does the teacher say?", "The teacher says 'Stand up.'"},
	// sharpeners
	"08 M A What is It – It is A Sharpener.gif": {"What is it?", "It is a sharpener."},
	"08 M B is It A Metal or Plastic Sharpener.jpg": {"Is it a metal or plastic sharpener?", "It is a metal sharpener. / It is a plastic sharpener."},
	"08 M C is It A Dragon or Dinosaur Sharpener.gif": {"Is it a dragon or dinosaur sharpener?", "It is a dragon sharpener. / It is a dinosaur sharpener."},
	"08 M D is It A Eye or Nose Sharpener.jpg": {"Is it an eye or nose sharpener?", "It is an eye sharpener. / It is a nose sharpener."},
	"08 M E is It A Roblox or Minecraft Sharpener.jpg": {"Is it a Roblox or Minecraft sharpener?", "It is a Roblox sharpener. / It is a Minecraft sharpener."},
	"08 M F is It A Happy or Sad Sharpener.gif": {"Is it a happy or sad sharpener?", "It is a happy sharpener. / It is a sad sharpener."},
	"08 M G Do You Have A Lego Sharpener.jpg": {"Do you have a Lego sharpener?", "Yes, I have a Lego sharpener. / No, I don't have a Lego sharpener."},
	"08 M H Do You Have A Sharpener in Your Pencil Case.gif": {"Do you have a sharpener in your pencil case?", "Yes, I have a sharpener in my pencil case. / No, I don't have a sharpener in my pencil case."},
	"08 M I How Many Sharpeners are There – There are 2.jpg": {"How many sharpeners are there?", "There are 2 sharpeners."},
	"08 M J How Many Sharpeners are There – There are 5.gif": {"How many sharpeners are there?", "There are 5 sharpeners."},
	"08 M K What Colour is the Sharpener – Purple.gif": {"What color is the sharpener?", "The sharpener is purple."},
	"08 M L What Colour are the Sharpeners.jpg": {"What color are the sharpeners?", "The sharpeners are [color]."},
	// school bags
	"09 N A What is It – It is A Bag.gif": {"What is it?", "It is a bag."},
	"09 N B What School Bag Do You Like.gif": {"What school bag do you like?", "I like [type of bag]."},
	"09 N C What School Bag Do You Like.jpg": {"What school bag do you like?", "I like [type of bag]."},
	"09 N D is It A Dog or Cat School Bag.gif": {"Is it a dog or cat school bag?", "It is a dog school bag. / It is a cat school bag."},
	"09 N E is It A Tiger or A Lion School Bag.gif": {"Is it a tiger or lion school bag?", "It is a tiger school bag. / It is a lion school bag."},
	"09 N F is It A Girls's or Boy's School Bag.gif": {"Is it a girl's or boy's school bag?", "It is a girl's school bag. / It is a boy's school bag."},
	"09 N G is It A Girls's or Boy's School Bag.gif": {"Is it a girl's or boy's school bag?", "It is a girl's school bag. / It is a boy's school bag."},
	"09 N H is It A Boy or Girl School Bag.jpg": {"Is it a boy or girl school bag?", "It is a boy school bag. / It is a girl school bag."},
	"09 N I Do You Have A School Bag.gif": {"Do you have a school bag?", "Yes, I have a school bag. / No, I don't have a school bag."},
	"09 N J is It A Spiderman or Superman School Bag.gif": {"Is it a Spiderman or Superman school bag?", "It is a Spiderman school bag. / It is a Superman school bag."},
	"09 N K is It A Nike or Adidas School Bag.gif": {"Is it a Nike or Adidas school bag?", "It is a Nike school bag. / It is an Adidas school bag."},
	"09 N L What Colour is the School Bag – Pink.gif": {"What color is the school bag?", "The school bag is pink."},
	"09 N L What Colour is the School Bag – Purple.gif": {"What color is the school bag?", "The school bag is purple."},
	"09 N M What Colour is the School Bag – Red.jpg": {"What color is the school bag?", "The school bag is red."},
	// rulers
	"10 N A What is It – It is A Ruler.gif": {"What is it?", "It is a ruler."},
	"10 N B What are They – They are Rulers.gif": {"What are they?", "They are rulers."},
	"10 N C is It A Big or Small Ruler.jpg": {"Is it a big or small ruler?", "It is a big ruler. / It is a small ruler."},
	"10 N D is It A Minecraft or A Roblox Ruler.jpg": {"Is it a Minecraft or Roblox ruler?", "It is a Minecraft ruler. / It is a Roblox ruler."},
	"10 N E is It S Sleeping or Dancing Ruler.gif": {"Is it a sleeping or dancing ruler?", "It is a sleeping ruler. / It is a dancing ruler."},
	"10 N F is It A Tiger or A Lion Ruler.png": {"Is it a tiger or lion ruler?", "It is a tiger ruler. / It is a lion ruler."},
	"10 N G is It A Cat or Dog Ruler.gif": {"Is it a cat or dog ruler?", "It is a cat ruler. / It is a dog ruler."},
	"10 N H is It A Girl's or Boy's Ruler. Png.png": {"Is it a girl's or boy's ruler?", "It is a girl's ruler. / It is a boy's ruler."},
	"10 N I Do You Have A Ruler in Your Pencil Case.gif": {"Do you have a ruler in your pencil case?", "Yes, I have a ruler in my pencil case. / No, I don't have a ruler in my pencil case."},
	"10 N J is It A Plastic or Metal Ruler.jpg": {"Is it a plastic or metal ruler?", "It is a plastic ruler. / It is a metal ruler."},
	"10 N K What Colour is the Ruler – Gold.png": {"What color is the ruler?", "The ruler is gold."},
	"10 N L What Ruler Do You Like.jpg": {"What ruler do you like?", "I like [type of ruler]."},
	"10 N M How Many Rulers are There – 5 Rulers.jpg": {"How many rulers are there?", "There are 5 rulers."},
	// pencil cases
	"11 N A What is It – It is A Pencil Case.gif": {"What is it?", "It is a pencil case."},
	"11 N B Do You Like This Pencil Case.gif": {"Do you like this pencil case?", "Yes, I like this pencil case. / No, I don't like this pencil case."},
	"11 N C is It A Dog or Car Pencil Case.gif": {"Is it a dog or car pencil case?", "It is a dog pencil case. / It is a car pencil case."},
	"11 N D Do You Have A Monster Pencil Case.gif": {"Do you have a monster pencil case?", "Yes, I have a monster pencil case. / No, I don't have a monster pencil case."},
	"11 N E is It A Pizza or Tortilla Pencil Case.jpg": {"Is it a pizza or tortilla pencil case?", "It is a pizza pencil case. / It is a tortilla pencil case."},
	"11 N F Do You Have A Pencil Case in Your Bag.gif": {"Do you have a pencil case in your bag?", "Yes, I have a pencil case in my bag. / No, I don't have a pencil case in my bag."},
	"11 N G Do You Have A Led Pencil Case 2.gif": {"Do you have a LED pencil case?", "Yes, I have a LED pencil case. / No, I don't have a LED pencil case."},
	"11 N G Do You Have A Led Pencil Case.gif": {"Do you have a LED pencil case?", "Yes, I have a LED pencil case. / No, I don't have a LED pencil case."},
	"11 N H Do You Have A Cat Pencil Case.jpg": {"Do you have a cat pencil case?", "Yes, I have a cat pencil case. / No, I don't have a cat pencil case."},
	"11 N I Do You Have A Rainbow Pencil Case.gif": {"Do you have a rainbow pencil case?", "Yes, I have a rainbow pencil case. / No, I don't have a rainbow pencil case."},
	"11 N J is It A Fish or Snake Pencil Case.jpg": {"Is it a fish or snake pencil case?", "It is a fish pencil case. / It is a snake pencil case."},
	"11 N K is It A Panda or Koala Pencil Case.gif": {"Is it a panda or koala pencil case?", "It is a panda pencil case. / It is a koala pencil case."},
	"11 N L What Colour is the Pencil Case – Pink.gif": {"What color is the pencil case?", "The pencil case is pink."},
	"11 N M What Colour is the Pencil Case – Green.gif": {"What color is the pencil case?", "The pencil case is green."},
	// scissors
	"12 N A What are They – They are Scissors.gif": {"What are they?", "They are scissors."},
	"12 N B are They Big or Small Scissors.jpg": {"Are they big or small scissors?", "They are big scissors. / They are small scissors."},
	"12 N C are They Big or Small Scissors.png": {"Are they big or small scissors?", "They are big scissors. / They are small scissors."},
	"12 N D are the Horse or Unicorn Scissors.jpg": {"Are they horse or unicorn scissors?", "They are horse scissors. / They are unicorn scissors."},
	"12 N E are They Panda or Koala Scissors.jpg": {"Are they panda or koala scissors?", "They are panda scissors. / They are koala scissors."},
	"12 N F Do You Have Scissors in Your Pencil Case.gif": {"Do you have scissors in your pencil case?", "Yes, I have scissors in my pencil case. / No, I don't have scissors in my pencil case."},
	"12 N G Do You Have Green Scissors.gif": {"Do you have green scissors?", "Yes, I have green scissors. / No, I don't have green scissors."},
	"12 N H What Colour are the Scissors – Purple.gif": {"What color are the scissors?", "The scissors are purple."},
	"12 N I What Colour are the Scissors.gif": {"What color are the scissors?", "The scissors are [color]."},
	"12 N J What Colour are the Scissors – Yellow.gif": {"What color are the scissors?", "The scissors are yellow."},
	"12 N K What Scissors Do You Like.jpg": {"What scissors do you like?", "I like [type of scissors]."},
	"12 N L How Many Scissors are There – 4 Scissors.jpg": {"How many scissors are there?", "There are 4 scissors."},
	"12 N M How Many Scissors are There – There are 3.jpg": {"How many scissors are there?", "There are 3 scissors."},
}
