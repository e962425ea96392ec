// Package localization holds the fixed response strings for every
// supported language. Messages are built once at startup and passed to
// components explicitly; hi is the universal fallback.
package localization

import (
	"fmt"
	"time"
)

// Supported language codes.
const (
	LanguageHindi   = "hi"
	LanguageEnglish = "en"
	LanguageTamil   = "ta"
	LanguageBengali = "bn"
	LanguageTelugu  = "te"
	LanguageMarathi = "mr"
	LanguageKannada = "kn"
)

// FallbackLanguage is used when a requested language has no template.
const FallbackLanguage = LanguageHindi

// HindiFallbackGreeting is the fixed message returned when incoming
// call handling fails anywhere. The call is never dropped silently.
const HindiFallbackGreeting = "नमस्ते, मैं EchoAid हूं। मैं आपकी सहायता करने के लिए यहां हूं।"

type welcomePair struct {
	newUser   string
	returning string
}

// Messages is the immutable localized-response table.
type Messages struct {
	welcome              map[string]welcomePair
	allProvidersBusy     map[string]string
	transferConnecting   map[string]string
	transferAlternative  map[string]string
	transferFailed       map[string]string
	transferError        map[string]string
	callbackConfirmation map[string]string
	callbackFailed       map[string]string
}

// New builds the message table. The welcome table covers hi/en/ta; the
// remaining languages fall back to Hindi.
func New() *Messages {
	return &Messages{
		welcome: map[string]welcomePair{
			LanguageHindi: {
				newUser:   "नमस्ते! मैं EchoAid हूं। मैं आपको सरकारी योजनाओं और सहायता सेवाओं से जोड़ने में मदद करता हूं। आप मुझसे हिंदी में बात कर सकते हैं। आपको किस प्रकार की सहायता चाहिए?",
				returning: "नमस्ते! EchoAid में आपका स्वागत है। मैं आपकी पिछली बातचीत याद रखता हूं। आज मैं आपकी कैसे सहायता कर सकता हूं?",
			},
			LanguageEnglish: {
				newUser:   "Hello! I'm EchoAid. I help connect you with government schemes and support services. You can speak to me in English or any Indian language. What kind of help do you need today?",
				returning: "Hello! Welcome back to EchoAid. I remember our previous conversation. How can I help you today?",
			},
			LanguageTamil: {
				newUser:   "வணக்கம்! நான் EchoAid. அரசு திட்டங்கள் மற்றும் உதவி சேவைகளுடன் உங்களை இணைக்க உதவுகிறேன். உங்களுக்கு என்ன உதவி தேவை?",
				returning: "வணக்கம்! EchoAid-க்கு மீண்டும் வரவேற்கிறோம். இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்?",
			},
		},
		allProvidersBusy: map[string]string{
			LanguageHindi:   "सभी सेवा प्रदाता व्यस्त हैं। कृपया कुछ समय बाद कॉल करें या मैं आपका संदेश रिकॉर्ड कर सकता हूं।",
			LanguageEnglish: "All service providers are busy right now. Please call again later, or I can record a message for you.",
		},
		transferConnecting: map[string]string{
			LanguageHindi:   "मैं आपको सही व्यक्ति से जोड़ रहा हूं। कृपया लाइन पर रुकें।",
			LanguageEnglish: "I'm connecting you with the right person. Please stay on the line.",
		},
		transferAlternative: map[string]string{
			LanguageHindi:   "मैं आपको एक वैकल्पिक सेवा प्रदाता से जोड़ रहा हूं। कृपया लाइन पर रुकें।",
			LanguageEnglish: "I'm connecting you with an alternative service provider. Please stay on the line.",
		},
		transferFailed: map[string]string{
			LanguageHindi:   "कनेक्शन में समस्या हुई। क्या मैं आपका संदेश रिकॉर्ड कर सकता हूं?",
			LanguageEnglish: "There was a problem with the connection. Can I record a message for you?",
		},
		transferError: map[string]string{
			LanguageHindi:   "कॉल ट्रांसफर में समस्या हुई। कृपया दोबारा कोशिश करें।",
			LanguageEnglish: "There was a problem transferring your call. Please try again.",
		},
		callbackConfirmation: map[string]string{
			LanguageHindi:   "आपका कॉलबैक %s बजे शेड्यूल किया गया है। हम आपको कॉल करेंगे।",
			LanguageEnglish: "Your callback is scheduled for %s. We will call you back.",
			LanguageTamil:   "உங்கள் கால்பேக் %s மணிக்கு திட்டமிடப்பட்டுள்ளது. நாங்கள் உங்களை அழைப்போம்.",
		},
		callbackFailed: map[string]string{
			LanguageHindi:   "कॉलबैक शेड्यूल करने में समस्या हुई।",
			LanguageEnglish: "There was a problem scheduling your callback.",
		},
	}
}

func pick(table map[string]string, language string) string {
	if msg, ok := table[language]; ok {
		return msg
	}
	return table[FallbackLanguage]
}

// Welcome returns the localized greeting for a new or returning caller.
func (m *Messages) Welcome(language string, isReturningUser bool) string {
	pair, ok := m.welcome[language]
	if !ok {
		pair = m.welcome[FallbackLanguage]
	}
	if isReturningUser {
		return pair.returning
	}
	return pair.newUser
}

// AllProvidersBusy returns the all-busy message.
func (m *Messages) AllProvidersBusy(language string) string {
	return pick(m.allProvidersBusy, language)
}

// TransferConnecting returns the transfer confirmation. The alternative
// variant is used when the original provider was unavailable.
func (m *Messages) TransferConnecting(language string, isAlternative bool) string {
	if isAlternative {
		return pick(m.transferAlternative, language)
	}
	return pick(m.transferConnecting, language)
}

// TransferFailed returns the message for a dial that did not connect.
func (m *Messages) TransferFailed(language string) string {
	return pick(m.transferFailed, language)
}

// TransferError returns the message for an error during transfer.
func (m *Messages) TransferError(language string) string {
	return pick(m.transferError, language)
}

// CallbackConfirmation returns the localized confirmation with the
// scheduled time formatted in.
func (m *Messages) CallbackConfirmation(language string, callbackTime time.Time) string {
	return fmt.Sprintf(pick(m.callbackConfirmation, language), callbackTime.Format("3:04 PM"))
}

// CallbackFailed returns the message for a failed callback scheduling.
func (m *Messages) CallbackFailed(language string) string {
	return pick(m.callbackFailed, language)
}
