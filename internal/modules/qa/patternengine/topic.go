package patternengine

import (
	"regexp"
	"strings"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
)

var (
	vacationIsRe      = regexp.MustCompile(`(?i)what vacation is it\W*(?:it is )?(?:an? )?([a-z ]+?)(?: vacation)?\.?$`)
	vacationGoOnRe    = regexp.MustCompile(`(?i)do you go on ([a-z ]+?) vacations`)
	vacationWouldRe   = regexp.MustCompile(`(?i)would you like to go on an? ([a-z ]+?) vacation`)
	vacationOpinionRe = regexp.MustCompile(`(?i)i think ([a-z ]+?) vacations are interesting`)
)

// topic covers the lesson formats that are recognisable from a phrase alone.
func topic(in *input) (qa.Result, bool) {
	l := in.lower
	if res, ok := dailyRoutine(l); ok {
		return res, true
	}
	if res, ok := vacation(in.text); ok {
		return res, true
	}
	switch {
	case strings.Contains(l, "fake or real"):
		return qa.NewResult("Is the picture fake or real?", "The picture is fake. / The picture is real."), true
	case qa.ContainsWord(l, "worksheet"):
		return qa.NewResult("This is a worksheet activity.", "Complete the worksheet according to the instructions."), true
	case qa.ContainsWord(l, "game") && !strings.Contains(l, "console"):
		return qa.NewResult("This is an interactive game.", "Play the game according to the instructions."), true
	case qa.ContainsWord(l, "video") || in.file.Ext == "mp4":
		return qa.NewResult("Watch the video.", "Follow along with the video activity."), true
	}
	return qa.Result{}, false
}

func dailyRoutine(l string) (qa.Result, bool) {
	has := func(words ...string) bool {
		for _, w := range words {
			if !strings.Contains(l, w) {
				return false
			}
		}
		return true
	}
	switch {
	case has("eat", "afternoon"):
		return qa.NewResult("What do you eat in the afternoon?", "I eat lunch in the afternoon."), true
	case has("dinner", "evening"):
		return qa.NewResult("What do you have for dinner in the evening?", "I have pasta/rice/meat/vegetables for dinner in the evening."), true
	case has("what time do you go to sleep"):
		return qa.NewResult("What time do you go to sleep at night?", "I go to sleep at 9/10/11 o'clock at night."), true
	case has("for breakfast"), has("eat", "morning"):
		return qa.NewResult("What do you eat for breakfast in the morning?", "I eat cereal/toast/eggs for breakfast in the morning."), true
	}
	return qa.Result{}, false
}

func vacation(text string) (qa.Result, bool) {
	if m := vacationIsRe.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		kind := qa.Phrase(m[1])
		return qa.NewResult("What vacation is it?", "It is "+qa.Article(kind)+" "+kind+" vacation."), true
	}
	if m := vacationOpinionRe.FindStringSubmatch(text); m != nil {
		kind := qa.Phrase(m[1])
		return qa.NewResult(
			"Are "+kind+" vacations interesting or boring?",
			"I think "+kind+" vacations are interesting. / I think "+kind+" vacations are boring.",
		), true
	}
	if m := vacationGoOnRe.FindStringSubmatch(text); m != nil {
		kind := qa.Phrase(m[1])
		return qa.NewResult(
			"Do you go on "+kind+" vacations?",
			"Yes, I go on "+kind+" vacations. / No, I don't go on "+kind+" vacations.",
		), true
	}
	if m := vacationWouldRe.FindStringSubmatch(text); m != nil {
		kind := qa.Phrase(m[1])
		art := qa.Article(kind)
		return qa.NewResult(
			"Would you like to go on "+art+" "+kind+" vacation?",
			"Yes, I would like to go on "+art+" "+kind+" vacation. / No, I wouldn't.",
		), true
	}
	return qa.Result{}, false
}
