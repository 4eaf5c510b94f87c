package logging

import (
	"sort"
	"strings"

	"github.com/samyak-jain-12/speakez-hackathon/internal/fluency"
)

// SpeakingTip is one piece of actionable delivery advice derived from an
// analysis result.
type SpeakingTip struct {
	Priority int    // higher = more important (1-10)
	Message  string // human-readable advice (1-2 sentences)
	RuleID   string // identifier for testing/logging (e.g. "frequent_pauses")
}

// MaxSpeakingTips is the maximum number of tips to return.
const MaxSpeakingTips = 3

// GenerateSpeakingTips inspects an analysis result and returns prioritised
// delivery suggestions. durationSecs is the length of the analyzed sample.
func GenerateSpeakingTips(result fluency.Result, durationSecs float64) []SpeakingTip {
	var tips []SpeakingTip
	fired := make(map[string]bool)

	rules := []func(fluency.Result, float64) *SpeakingTip{
		tipShortSample,
		tipHighRepetition,
		tipUnevenDelivery,
		tipMildUnevenness,
		tipFrequentPauses,
	}

	for _, rule := range rules {
		if tip := rule(result, durationSecs); tip != nil {
			tips = append(tips, *tip)
			fired[tip.RuleID] = true
		}
	}

	tips = applyExclusions(tips, fired)

	sort.Slice(tips, func(i, j int) bool {
		return tips[i].Priority > tips[j].Priority
	})

	if len(tips) > MaxSpeakingTips {
		tips = tips[:MaxSpeakingTips]
	}
	return tips
}

// applyExclusions drops tips made redundant by a more specific one. A very
// short sample makes the score-based tips unreliable, so it suppresses them;
// the mild-unevenness tip is implied by the stronger uneven-delivery tip.
func applyExclusions(tips []SpeakingTip, fired map[string]bool) []SpeakingTip {
	var result []SpeakingTip
	for _, tip := range tips {
		switch tip.RuleID {
		case "uneven_delivery", "repetition_high", "mild_unevenness":
			if fired["sample_short"] {
				continue
			}
			if tip.RuleID == "mild_unevenness" && fired["uneven_delivery"] {
				continue
			}
		}
		result = append(result, tip)
	}
	return result
}

// tipShortSample fires for samples too short to score reliably. The analyzer
// needs at least a few seconds of speech before its evidence floors clear.
func tipShortSample(_ fluency.Result, durationSecs float64) *SpeakingTip {
	if durationSecs >= 3.0 {
		return nil
	}
	return &SpeakingTip{
		Priority: 8,
		RuleID:   "sample_short",
		Message:  "This sample is very short. Try recording at least ten seconds of speech for a more reliable picture.",
	}
}

// tipHighRepetition fires when the repetition score crosses the disorder
// threshold.
func tipHighRepetition(r fluency.Result, _ float64) *SpeakingTip {
	if r.Repetition <= 0.45 {
		return nil
	}
	return &SpeakingTip{
		Priority: 9,
		RuleID:   "repetition_high",
		Message:  "Several phrases sounded very alike in length and loudness. Slowing down between thoughts can help each one land once.",
	}
}

// tipUnevenDelivery fires when the instability score crosses the disorder
// threshold.
func tipUnevenDelivery(r fluency.Result, _ float64) *SpeakingTip {
	if r.Stuttering <= 0.45 {
		return nil
	}
	return &SpeakingTip{
		Priority: 9,
		RuleID:   "uneven_delivery",
		Message:  "Loudness shifted a lot between neighbouring sounds. A steady breath before speaking often evens this out.",
	}
}

// tipMildUnevenness fires in the band below the disorder threshold where
// delivery is noticeably but not strongly uneven.
func tipMildUnevenness(r fluency.Result, _ float64) *SpeakingTip {
	if r.Stuttering <= 0.25 || r.Stuttering > 0.45 {
		return nil
	}
	return &SpeakingTip{
		Priority: 5,
		RuleID:   "mild_unevenness",
		Message:  "Delivery was mostly steady with occasional wobbles. Reading a sentence aloud twice before recording can smooth these.",
	}
}

// tipFrequentPauses fires at three or more long pauses, matching the
// analyzer's own pause-message floor.
func tipFrequentPauses(r fluency.Result, _ float64) *SpeakingTip {
	if r.Pauses < 3 {
		return nil
	}
	return &SpeakingTip{
		Priority: 6,
		RuleID:   "frequent_pauses",
		Message:  "There were several pauses longer than a quarter second. Pauses are fine; if they feel unplanned, try shorter sentences.",
	}
}

// wrapText wraps text at word boundaries to fit within maxWidth columns.
// Continuation lines are prefixed with indent.
func wrapText(text string, maxWidth int, indent string) string {
	words := strings.Fields(text)
	var lines []string
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= maxWidth {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+indent)
}
