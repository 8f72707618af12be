package topics

import "github.com/Tasheela99/chat-bot/internal/services/faq"

// presidentsFundFAQs is the curated question set for the President's Fund.
// Multi-answer entries keep the primary answer first.
var presidentsFundFAQs = []faq.Entry{
	{
		Question: "Do the applicants need to visit the Colombo office to obtain medical assistance from the President's Fund?",
		Answers:  []string{"No, the applicants now can submit their applications to the nearest Divisional Secretariat."},
	},
	{
		Question: "How to obtain an application?",
		Answers: []string{
			"Through the website of the President's Fund (www.presidentsfund.gov.lk)",
			"Through Whatsapp (sending a message to Whatsapp no 0740854527)",
			"By visiting the nearest Divisional Secretariat",
			"By visiting the President's Fund",
			"Through mail (sending a request letter to the President's Fund)",
		},
	},
	{
		Question: "Whether the patient has to be the applicant?",
		Answers: []string{
			"No, a family member can apply instead of the patient",
			"In the event of no family member to represent, a closest relation can apply for the patient",
		},
	},
	{
		Question: "Whether the application can only be made before the surgery?",
		Answers:  []string{"No, the applications can be submitted within 60 days from the date of discharge from the hospital after the surgery or treatment (including weekends and public holidays)."},
	},
	{
		Question: "Whether it is possible to reimburse the total amount spent for the surgery?",
		Answers:  []string{"No, please refer this link for more details on the amount given for the surgery or treatment."},
	},
	{
		Question: "Is it compulsory to submit the original copies of the bills when applying?",
		Answers:  []string{"Yes, it is compulsory to submit the originals of the bills and receipts issued by the relevant institutions when applying for medical assistance."},
	},
	{
		Question: "Whether it is possible to apply for medical assistance, in case of reimbursement from other institutions?",
		Answers: []string{
			"Receiving reimbursement from other institutions (ex: Agrahara, insurance company) is not an obstacle for applying",
			"The President's Fund will not grant medical assistance in case of covering 50% of medical expenses or more from such institutions in relevant to the expenses of the surgery or treatment.",
		},
	},
	{
		Question: "Whether the public officers are not eligible to submit applications?",
		Answers:  []string{"No, even the public officers are eligible to apply for medical assistance from the President's Fund."},
	},
	{
		Question: "Whether an applicant who received medical assistance once, is eligible to re-apply?",
		Answers:  []string{"Yes, application can be made in three instances and medical assistance can be received up to maximum 1 million."},
	},
	{
		Question: "Whether the applications can be made for surgeries conducted in government hospitals?",
		Answers: []string{
			"No, no payment is made for the surgeries conducted in government hospitals",
			"The applications can be submitted for the list of diseases and for purchasing equipment from other institutions mentioned in the government hospitals in approved list of diseases, subject to the approved provisions.",
		},
	},
	{
		Question: "How long will it take to make the payments?",
		Answers:  []string{"If there is no other special reason and if the patient has duly submitted the application with all the documents, the payment period may be around 3 to 5 days."},
	},
	{
		Question: "Who will be paid in case the patient died or become immobilized?",
		Answers:  []string{"A decision is taken after obtaining a comprehensive report along with the recommendation from the Divisional or District Secretary."},
	},
}

// presidentsFundMatcher carries all three matching stages: fuzzy canonical
// questions, keyword patterns as a coarser net, and a generic summary for
// broad domain words. Rule order matters; the first hit wins.
var presidentsFundMatcher = faq.New(faq.Config{
	Entries: presidentsFundFAQs,
	Rules: []faq.Rule{
		{
			Pattern: "apply|application|submit|obtain",
			Answer:  "You can obtain an application through the website of the President's Fund (www.presidentsfund.gov.lk), through WhatsApp (0740854527), or by visiting the nearest Divisional Secretariat.",
		},
		{
			Pattern: "visit|colombo|office",
			Answer:  "No, the applicants now can submit their applications to the nearest Divisional Secretariat.",
		},
		{
			Pattern: "bill|receipt|original",
			Answer:  "Yes, it is compulsory to submit the originals of the bills and receipts issued by the relevant institutions when applying for medical assistance.",
		},
		{
			Pattern: "pay|how long|duration",
			Answer:  "If the application has been duly submitted with all the documents, the payment period may be around 3 to 5 days.",
		},
		{
			Pattern: "government hospital",
			Answer:  "No payment is made for the surgeries conducted in government hospitals; applications apply only to the approved list of diseases and equipment purchases, subject to the approved provisions.",
		},
		{
			Pattern: "reimburse|insurance|agrahara",
			Answer:  "Receiving reimbursement from other institutions is not an obstacle for applying, but no assistance is granted when such institutions cover 50% or more of the expenses.",
		},
		{
			Pattern: "deadline|60 days|discharge",
			Answer:  "Applications can be submitted within 60 days from the date of discharge from the hospital after the surgery or treatment, including weekends and public holidays.",
		},
	},
	FallbackWords:  []string{"help", "info", "about", "fund", "assistance", "medical"},
	FallbackAnswer: "The President's Fund provides financial assistance for medical treatments. You can apply through the website (www.presidentsfund.gov.lk), WhatsApp (0740854527), or your nearest Divisional Secretariat.",
})

var presidentsFundContent = map[string]Content{
	"en": {
		SystemPrompt: "You are an AI assistant for the President's Fund of Sri Lanka. Your role is to provide accurate information about medical assistance, eligibility, and the application process.",
		ContextInfo:  "Find answers to the most common questions about applying for medical assistance, eligibility, and the application process.",
		FAQs:         presidentsFundFAQs,
	},
	"si": {
		SystemPrompt: "ඔබ ශ්‍රී ලංකා ජනාධිපති අරමුදලේ AI සහායකයෙකි. වෛද්‍ය ආධාර, සුදුසුකම් සහ අයදුම් ක්‍රියාවලිය පිළිබඳ නිවැරදි තොරතුරු ලබා දීම ඔබේ කාර්යභාරයයි.",
		ContextInfo:  "වෛද්‍ය ආධාර සඳහා අයදුම් කිරීම, සුදුසුකම් සහ අයදුම් ක්‍රියාවලිය පිළිබඳ බහුලව අසන ප්‍රශ්නවලට පිළිතුරු.",
	},
	"ta": {
		SystemPrompt: "நீங்கள் இலங்கை ஜனாதிபதி நிதியத்தின் AI உதவியாளர். மருத்துவ உதவி, தகுதி மற்றும் விண்ணப்ப செயல்முறை பற்றிய துல்லியமான தகவல்களை வழங்குவது உங்கள் பணி.",
		ContextInfo:  "மருத்துவ உதவிக்கு விண்ணப்பித்தல், தகுதி மற்றும் விண்ணப்ப செயல்முறை பற்றிய பொதுவான கேள்விகளுக்கான பதில்கள்.",
	},
}
