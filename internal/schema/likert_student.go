package schema

var studentSections = []Section{
	{
		Key:         "A",
		Title:       "Section A: Perceived Value and Use of AI for Learning and Engineering Practice",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "PU-L",
				Name: "A1. Perceived Usefulness—Learning (PU-L)",
				Items: []Item{
					{Code: "PU-L1", Text: "When used appropriately, AI tools help me understand engineering concepts more deeply, not just complete assignments."},
					{Code: "PU-L2", Text: "AI tools enable learning activities (e.g., rapid iteration, design exploration, critique) that would be difficult to do otherwise."},
					{Code: "PU-L3", Text: "AI tools help me explore multiple solution paths or design alternatives rather than converging too quickly on one answer."},
					{Code: "PU-L4", Text: "Using AI tools has helped me engage more realistically with how engineers work in practice."},
				},
			},
			{
				ID:   "PU-E",
				Name: "A2. Perceived Usefulness—Efficiency (PU-E)",
				Items: []Item{
					{Code: "PU-E1", Text: "AI tools help me work more efficiently on engineering tasks."},
					{Code: "PU-E2", Text: "AI tools save time that I can reinvest in understanding, testing, or improving my work."},
				},
			},
			{
				ID:   "PEU",
				Name: "A3. Perceived Ease of Responsible Use (PEU)",
				Items: []Item{
					{Code: "PEU1", Text: "I understand how to use AI tools in ways that support my learning rather than replace it."},
					{Code: "PEU2", Text: "I find it manageable to follow course rules or expectations about AI use."},
					{Code: "PEU3", Text: "I can explain why I used AI tools in an assignment, not just that I used them."},
				},
			},
			{
				ID:   "EJ",
				Name: "A4. Epistemic Judgment (EJ)",
				Items: []Item{
					{Code: "EJ1", Text: "I can recognize when AI outputs conflict with engineering principles (e.g., units, assumptions, constraints)."},
					{Code: "EJ2", Text: "I do not rely on AI outputs without checking, testing, or justifying them."},
					{Code: "EJ3", Text: "I treat AI outputs as suggestions to evaluate, not answers to accept."},
				},
			},
			{
				ID:   "BI",
				Name: "A5. Behavioral Intention (BI)",
				Items: []Item{
					{Code: "BI1", Text: "I intend to use AI tools in ways that improve my learning and engineering judgment, not just my grades."},
					{Code: "BI2", Text: "I expect my use of AI tools in engineering learning to increase as I learn how to use them responsibly."},
					{Code: "BI3", Text: "I would recommend AI tool use to other students when paired with clear learning expectations and guardrails."},
				},
			},
		},
	},
	{
		Key:         "B",
		Title:       "Section B: AI Use Practices, Guardrails, and Ownership in Engineering Learning",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "MU",
				Name: "B1. Modes of AI Use (MU)",
				Items: []Item{
					{Code: "MU1", Text: "I use AI tools as a tutor or coach to help me think through problems."},
					{Code: "MU2", Text: "I use AI tools to explore “what-if” scenarios or alternative designs."},
					{Code: "MU3", Text: "I use AI tools to critique, compare, or improve my own work."},
					{Code: "MU4", Text: "I avoid using AI tools in ways that would complete an assignment without my own reasoning."},
				},
			},
			{
				ID:   "LP",
				Name: "B2. Timing in the Learning Process (LP)",
				Items: []Item{
					{Code: "LP1", Text: "I usually attempt a problem or design before using AI tools."},
					{Code: "LP2", Text: "I use AI tools after initial work to refine, test, or challenge my ideas."},
					{Code: "LP3", Text: "I know when AI tool use is not appropriate for my learning."},
				},
			},
			{
				ID:   "GB",
				Name: "B3. Guardrails and Boundaries (GB)",
				Items: []Item{
					{Code: "GB1", Text: "I set personal boundaries for AI tool use to ensure I am still learning key concepts."},
					{Code: "GB2", Text: "I follow course-specific expectations about AI use for each assignment."},
					{Code: "GB3", Text: "I keep track of how AI influenced my thinking or decisions."},
				},
			},
			{
				ID:   "OA",
				Name: "B4. Ownership and Accountability (OA)",
				Items: []Item{
					{Code: "OA1", Text: "I can clearly explain what I contributed versus what AI contributed to my work."},
					{Code: "OA2", Text: "I can defend AI-assisted decisions using engineering reasoning, not just AI explanations."},
					{Code: "OA3", Text: "I take full responsibility for the correctness and quality of AI-assisted work I submit."},
					{Code: "OA4", Text: "Disclosing AI use helps me reflect on my learning, not just meet a requirement."},
				},
			},
			{
				ID:   "EV",
				Name: "B5. Evaluation and Verification (EV)",
				Items: []Item{
					{Code: "EV1", Text: "I test or verify AI-assisted code, models, or calculations."},
					{Code: "EV2", Text: "I check AI outputs against known constraints, assumptions, or physical principles."},
					{Code: "EV3", Text: "I value assignments that reward reasoning and validation, not just final answers."},
				},
			},
			{
				ID:   "ET",
				Name: "B6. Ethics and Responsible Use (ET)",
				Items: []Item{
					{Code: "ET1", Text: "I understand that AI outputs may reflect bias or limitations."},
					{Code: "ET2", Text: "I know what information should not be entered into AI tools (e.g., personal, proprietary, or sensitive data)."},
					{Code: "ET3", Text: "I understand when and how to disclose AI use in academic or professional contexts."},
					{Code: "ET4", Text: "I think about the ethical implications of using AI in engineering decisions."},
				},
			},
		},
	},
	{
		Key:         "C",
		Title:       "Section C: AI Readiness and Career Preparedness (AR / CR)",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "AR",
				Name: "C1. Current Readiness (AR)",
				Items: []Item{
					{Code: "AR1", Text: "I feel prepared to use AI tools appropriately in my current engineering coursework or projects."},
					{Code: "AR2", Text: "I feel confident selecting when AI tools are helpful versus when traditional engineering methods are more appropriate."},
					{Code: "AR3", Text: "I feel prepared to verify and validate AI-assisted results using engineering principles."},
					{Code: "AR4", Text: "I feel prepared to use AI tools in ways that align with academic integrity and engineering ethics."},
				},
			},
			{
				ID:   "CR",
				Name: "C2. Career Readiness and Professional Signaling (CR)",
				Items: []Item{
					{Code: "CR1", Text: "AI skills will be important in my future engineering career."},
					{Code: "CR2", Text: "I am intentionally developing AI-augmented engineering skills, not just tool familiarity."},
					{Code: "CR3", Text: "I can explain how my AI use adds value to my work in a professional setting."},
					{Code: "CR4", Text: "I feel prepared to discuss my AI use confidently with employers or internship supervisors."},
					{Code: "CR5", Text: "I know what skills or knowledge I still need to develop to improve my readiness to work with AI tools."},
				},
			},
		},
	},
}
