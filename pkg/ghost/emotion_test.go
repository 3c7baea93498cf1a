package ghost

import "testing"

func TestParseEmotion(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want Emotion
	}{
		{"神秘", "mysterious", EmotionMysterious},
		{"冒险", "adventurous", EmotionAdventurous},
		{"自信", "confident", EmotionConfident},
		{"愉悦", "delighted", EmotionDelighted},
		{"得意", "smug", EmotionSmug},
		{"不服", "defiant", EmotionDefiant},
		{"开心", "happy", EmotionHappy},
		{"害羞", "shy", EmotionShy},
		{"邪恶", "evil", EmotionEvil},
		{"未知标签回落", "nonsense", EmotionMysterious},
		{"空标签回落", "", EmotionMysterious},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEmotion(tt.tag)
			if got != tt.want {
				t.Errorf("ParseEmotion(%q) = %v, 期望 %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestEmotionStringRoundTrip(t *testing.T) {
	emotions := []Emotion{
		EmotionMysterious, EmotionAdventurous, EmotionConfident,
		EmotionDelighted, EmotionSmug, EmotionDefiant,
		EmotionHappy, EmotionShy, EmotionEvil,
	}
	for _, e := range emotions {
		if got := ParseEmotion(e.String()); got != e {
			t.Errorf("ParseEmotion(%q) = %v, 期望 %v", e.String(), got, e)
		}
	}
}

func TestEmotionFeatureFlags(t *testing.T) {
	if !EmotionSmug.hasEyebrows() {
		t.Error("得意表情应有眉毛")
	}
	if !EmotionDelighted.hasBlush() {
		t.Error("愉悦表情应有腮红")
	}
	if EmotionMysterious.hasEyebrows() || EmotionMysterious.hasBlush() {
		t.Error("神秘表情不应有眉毛或腮红")
	}
	if !EmotionShy.narrowEyes() {
		t.Error("害羞表情应为眯眼")
	}
}
