package content

import (
	"encoding/json"

	"github.com/gosimple/slug"
	"github.com/wordarena/WordArena/pkg/logger"
	"gorm.io/datatypes"
)

type seedQuestion struct {
	Prompt       string
	Options      []string
	CorrectIndex int
}

type seedPassage struct {
	Title      string
	Body       string
	Difficulty int
	Questions  []seedQuestion
}

var defaultPassages = []seedPassage{
	{
		Title:      "The Honeybee Waggle Dance",
		Difficulty: 1,
		Body: "When a honeybee finds a patch of flowers, it returns to the hive and performs " +
			"a figure-eight movement called the waggle dance. The angle of the dance tells other " +
			"bees the direction of the flowers relative to the sun, and the length of the waggle " +
			"tells them how far away the flowers are. In this way a single scout can recruit " +
			"dozens of foragers to a food source it discovered alone.",
		Questions: []seedQuestion{
			{
				Prompt:       "What does the angle of the waggle dance communicate?",
				Options:      []string{"The distance to the flowers", "The direction of the flowers", "The number of flowers", "The time of day"},
				CorrectIndex: 1,
			},
			{
				Prompt:       "How is distance communicated in the dance?",
				Options:      []string{"By the length of the waggle", "By the speed of flight", "By buzzing loudly", "By the size of the circle"},
				CorrectIndex: 0,
			},
			{
				Prompt:       "What is the main purpose of the waggle dance?",
				Options:      []string{"To warm up the hive", "To attract a mate", "To recruit foragers to a food source", "To scare predators"},
				CorrectIndex: 2,
			},
		},
	},
	{
		Title:      "The Great Emu War",
		Difficulty: 2,
		Body: "In 1932, farmers in Western Australia asked the army for help against some " +
			"twenty thousand emus that were trampling their wheat fields. Soldiers armed with " +
			"machine guns pursued the birds for over a month, but the emus scattered into small " +
			"groups and proved remarkably hard to hit. In the end only a small fraction of the " +
			"birds were culled, and the operation was abandoned, remembered today as a war that " +
			"the emus won.",
		Questions: []seedQuestion{
			{
				Prompt:       "Why did the farmers ask the army for help?",
				Options:      []string{"Emus were attacking livestock", "Emus were trampling wheat fields", "Emus spread disease", "Emus blocked the roads"},
				CorrectIndex: 1,
			},
			{
				Prompt:       "Why was the operation unsuccessful?",
				Options:      []string{"The soldiers ran out of ammunition", "The weather was too hot", "The emus scattered into small groups", "The farmers changed their minds"},
				CorrectIndex: 2,
			},
			{
				Prompt:       "How is the event remembered?",
				Options:      []string{"As a great military victory", "As a war the emus won", "As a natural disaster", "As a political scandal"},
				CorrectIndex: 1,
			},
		},
	},
	{
		Title:      "Reading the Rings of a Tree",
		Difficulty: 3,
		Body: "Each year a tree adds a new layer of wood beneath its bark, visible in cross " +
			"section as a ring. Wide rings mark years of generous rain and sunlight, while narrow " +
			"rings record drought or cold. By matching overlapping ring patterns from living trees, " +
			"old buildings, and buried logs, scientists have assembled climate records stretching " +
			"back thousands of years, a discipline known as dendrochronology.",
		Questions: []seedQuestion{
			{
				Prompt:       "What does a wide tree ring indicate?",
				Options:      []string{"A year of drought", "A year of generous rain and sunlight", "An insect infestation", "The age of the tree"},
				CorrectIndex: 1,
			},
			{
				Prompt:       "What is dendrochronology?",
				Options:      []string{"The study of tree diseases", "The harvesting of old trees", "Building climate records from ring patterns", "The carving of wooden tools"},
				CorrectIndex: 2,
			},
			{
				Prompt:       "Where do scientists find overlapping ring patterns?",
				Options:      []string{"Only in living trees", "In living trees, old buildings, and buried logs", "In museum archives", "In fossilized leaves"},
				CorrectIndex: 1,
			},
		},
	},
}

var defaultWords = []SpellingWord{
	{Word: "necessary", Definition: "Required to be done; essential.", Hint: "One c, two s.", Difficulty: 2},
	{Word: "rhythm", Definition: "A strong, repeated pattern of movement or sound.", Hint: "No ordinary vowels.", Difficulty: 3},
	{Word: "separate", Definition: "To divide into parts or move apart.", Hint: "There is 'a rat' in the middle.", Difficulty: 2},
	{Word: "believe", Definition: "To accept that something is true.", Hint: "i before e.", Difficulty: 1},
	{Word: "embarrass", Definition: "To cause someone to feel awkward or ashamed.", Hint: "Two r, two s.", Difficulty: 3},
	{Word: "occasion", Definition: "A particular time or event.", Hint: "Two c, one s.", Difficulty: 2},
	{Word: "definitely", Definition: "Without doubt; certainly.", Hint: "Finite in the middle.", Difficulty: 2},
	{Word: "conscience", Definition: "A person's inner sense of right and wrong.", Hint: "Science hides inside.", Difficulty: 3},
	{Word: "library", Definition: "A place where books are kept for reading or borrowing.", Hint: "Two r's, not one.", Difficulty: 1},
	{Word: "beginning", Definition: "The point at which something starts.", Hint: "Double n.", Difficulty: 1},
	{Word: "calendar", Definition: "A chart showing days, weeks, and months of a year.", Hint: "Ends with -ar.", Difficulty: 2},
	{Word: "restaurant", Definition: "A place where meals are prepared and served.", Hint: "French origin.", Difficulty: 2},
	{Word: "vacuum", Definition: "A space entirely empty of matter.", Hint: "Double u.", Difficulty: 3},
	{Word: "grateful", Definition: "Feeling thankful.", Hint: "Not 'great'.", Difficulty: 1},
	{Word: "miniature", Definition: "Much smaller than normal size.", Hint: "Mini + ature.", Difficulty: 3},
}

// Seed inserts the default passages and words if the tables are empty.
// Safe to call on every startup.
func Seed(repo ContentRepository) error {
	passageCount, err := repo.CountPassages()
	if err != nil {
		return err
	}

	if passageCount == 0 {
		for _, sp := range defaultPassages {
			passage := ReadingPassage{
				Title:      sp.Title,
				Slug:       slug.Make(sp.Title),
				Body:       sp.Body,
				Difficulty: sp.Difficulty,
			}
			for _, sq := range sp.Questions {
				options, err := encodeOptions(sq.Options)
				if err != nil {
					return err
				}
				passage.Questions = append(passage.Questions, ComprehensionQuestion{
					Prompt:       sq.Prompt,
					Options:      options,
					CorrectIndex: sq.CorrectIndex,
				})
			}
			if err := repo.CreatePassage(&passage); err != nil {
				return err
			}
		}
		logger.Infof("Seeded %d reading passages", len(defaultPassages))
	}

	wordCount, err := repo.CountWords()
	if err != nil {
		return err
	}

	if wordCount == 0 {
		if err := repo.CreateWords(defaultWords); err != nil {
			return err
		}
		logger.Infof("Seeded %d spelling words", len(defaultWords))
	}

	return nil
}

func encodeOptions(options []string) (datatypes.JSON, error) {
	data, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
