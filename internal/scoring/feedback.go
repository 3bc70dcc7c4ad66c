package scoring

import (
	"fmt"
	"strings"
)

// pronunciationFeedback maps a pronunciation score to a message. Checked in
// precedence order: exact normalized match, target contained in the
// recognized speech, then fixed score bands. The lowest band distinguishes
// whether any speech was recognized at all.
func pronunciationFeedback(score int, recognized, target string) string {
	recognizedClean := strings.ToLower(strings.TrimSpace(recognized))
	targetClean := strings.ToLower(strings.TrimSpace(target))

	if recognizedClean == targetClean {
		return "Perfect pronunciation! Great job!"
	}

	if targetClean != "" && strings.Contains(recognizedClean, targetClean) {
		return "Good! You said the word correctly. Score based on clarity."
	}

	switch {
	case score >= 90:
		return "Excellent pronunciation! Almost perfect!"
	case score >= 75:
		return "Great pronunciation! Minor differences detected."
	case score >= 60:
		return "Good attempt! Some sounds need work."
	case score >= 40:
		return "Keep practicing! Focus on individual sounds."
	case score >= 20:
		return fmt.Sprintf("The word '%s' sounds quite different. Try again slowly.", target)
	default:
		if recognized == "" {
			return "Could not detect speech. Please try again."
		}
		return fmt.Sprintf("We heard '%s'. The target word is '%s'. Try again!", recognized, target)
	}
}

// spellingFeedback maps a spelling score to a message using four bands
func spellingFeedback(score int, target string) string {
	switch {
	case score >= 90:
		return "Almost perfect! Just a small typo."
	case score >= 75:
		return "Good try! A few letters are off."
	case score >= 50:
		return "Keep going! You got some letters right."
	default:
		return fmt.Sprintf("The correct spelling is '%s'. Try again!", target)
	}
}
