package schema

var facultySections = []Section{
	{
		Key:         "A",
		Title:       "Section A: Perceived Value and Usability of AI for Teaching and Learning",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "PU-L",
				Name: "A1. Perceived Usefulness—Learning (PU-L)",
				Items: []Item{
					{Code: "PU-L1", Text: "Using AI tools in my courses can improve students’ conceptual understanding of engineering topics when appropriately designed."},
					{Code: "PU-L2", Text: "AI tools enable learning activities that would be difficult or impractical to implement without AI (e.g., rapid iteration, simulation, critique)."},
					{Code: "PU-L3", Text: "AI tools can support deeper learning when used to prompt explanation, justification, or reflection rather than to provide final answers."},
					{Code: "PU-L4", Text: "AI tool use in my courses can help students engage with authentic engineering practices (e.g., modeling, design tradeoffs, testing assumptions)."},
				},
			},
			{
				ID:   "PU-E",
				Name: "A2. Perceived Usefulness—Faculty Efficiency (PU-E)",
				Items: []Item{
					{Code: "PU-E1", Text: "AI tools improve my efficiency in preparing instructional materials, assessments, or feedback."},
					{Code: "PU-E2", Text: "AI tools help me redesign courses or assignments in ways that better align with learning goals."},
				},
			},
			{
				ID:   "PEU",
				Name: "A3. Perceived Ease of Pedagogical Integration (PEU)",
				Items: []Item{
					{Code: "PEU1", Text: "I find it manageable to design assignments where AI tool use is scaffolded rather than unrestricted."},
					{Code: "PEU2", Text: "I can clearly explain to students when, how, and why AI tools may be used in my course."},
					{Code: "PEU3", Text: "Designing AI-mediated learning activities does not require excessive additional time or effort."},
				},
			},
			{
				ID:   "EJ",
				Name: "A4. Epistemic Trust and Judgment (EJ)",
				Items: []Item{
					{Code: "EJ1", Text: "I am confident in recognizing when AI outputs conflict with fundamental engineering principles."},
					{Code: "EJ2", Text: "I design learning activities so that AI outputs must be evaluated, tested, or defended, not accepted at face value."},
					{Code: "EJ3", Text: "I am cautious about relying on AI outputs unless they are validated through disciplinary methods."},
				},
			},
			{
				ID:   "BI",
				Name: "A5. Behavioral Intention for Instructional Use (BI)",
				Items: []Item{
					{Code: "BI1", Text: "I intend to integrate AI tools into my courses in ways that directly support student learning, not just task completion."},
					{Code: "BI2", Text: "I expect my use of AI-mediated learning activities to increase over time."},
					{Code: "BI3", Text: "I would recommend AI tool integration to colleagues when paired with appropriate instructional guardrails."},
				},
			},
		},
	},
	{
		Key:         "B",
		Title:       "Section B: Instructional Design, Guardrails, and Student Ownership in AI-Mediated Learning",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "MU",
				Name: "B1. Modes of AI Use in Teaching (MU)",
				Items: []Item{
					{Code: "MU1", Text: "I use AI tools as a learning tutor or coach (e.g., prompting explanation, asking follow-up questions) rather than as an answer provider."},
					{Code: "MU2", Text: "I use AI tools to support design exploration or “what-if” analysis, not just solution generation."},
					{Code: "MU3", Text: "I use AI tools to help students critique, compare, or improve their own work."},
					{Code: "MU4", Text: "I avoid designing assignments where AI tools can complete the task without meaningful student reasoning."},
				},
			},
			{
				ID:   "LP",
				Name: "B2. Placement of AI in the Learning Process (LP)",
				Items: []Item{
					{Code: "LP1", Text: "I require students to attempt problem solving or design before using AI tools."},
					{Code: "LP2", Text: "I design activities where AI tools are used after initial work to refine, test, or challenge student ideas."},
					{Code: "LP3", Text: "I intentionally decide when AI tool use is not appropriate in the learning process."},
				},
			},
			{
				ID:   "GB",
				Name: "B3. Guardrails and Constraints (GB)",
				Items: []Item{
					{Code: "GB1", Text: "I explicitly define what types of AI use are allowed, limited, or prohibited for each assignment."},
					{Code: "GB2", Text: "I design assignments so that AI tools cannot replace core cognitive work (e.g., reasoning, modeling, justification)."},
					{Code: "GB3", Text: "I include process requirements (e.g., drafts, reasoning steps, reflections) that make student thinking visible even when AI tools are used."},
					{Code: "GB4", Text: "I assess student learning in ways that discourage over-reliance on AI-generated outputs."},
				},
			},
			{
				ID:   "OA",
				Name: "B4. Student Ownership and Accountability (OA)",
				Items: []Item{
					{Code: "OA1", Text: "I require students to explain their own contribution versus AI assistance in submitted work."},
					{Code: "OA2", Text: "I require students to defend or justify AI-assisted decisions using engineering principles."},
					{Code: "OA3", Text: "Students in my courses remain clearly accountable for the quality and correctness of AI-assisted work."},
					{Code: "OA4", Text: "I use AI disclosure as a learning artifact (reflection, explanation), not just a compliance statement."},
				},
			},
			{
				ID:   "EV",
				Name: "B5. Evaluation and Verification (EV)",
				Items: []Item{
					{Code: "EV1", Text: "I require testing, validation, or verification of AI-assisted code, models, or analyses."},
					{Code: "EV2", Text: "I model how engineers should question, test, and refine AI outputs."},
					{Code: "EV3", Text: "I design assessments that reward sound reasoning and validation, not just correct final answers."},
				},
			},
			{
				ID:   "ET",
				Name: "B6. Ethics and Responsible Use (ET)",
				Items: []Item{
					{Code: "ET1", Text: "I address potential bias, limitations, or uncertainty in AI outputs relevant to engineering contexts."},
					{Code: "ET2", Text: "I clearly communicate what data or information should not be entered into AI tools."},
					{Code: "ET3", Text: "I clarify expectations for transparent disclosure of AI use in academic work."},
					{Code: "ET4", Text: "I discuss ethical implications of AI-assisted engineering decisions, not just tool usage."},
				},
			},
		},
	},
	{
		Key:         "C",
		Title:       "Section C: AI Readiness for Educating AI-Ready Engineers (AR / CR)",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "AR",
				Name: "C1. Faculty AI Readiness (AR)",
				Items: []Item{
					{Code: "AR1", Text: "I feel prepared to integrate AI tools appropriately in my teaching, research, or assessment activities."},
					{Code: "AR2", Text: "I feel confident determining when AI tools are appropriate versus when traditional approaches are preferable."},
					{Code: "AR3", Text: "I feel prepared to verify and validate AI-assisted outputs using engineering or disciplinary standards."},
					{Code: "AR4", Text: "I feel prepared to integrate AI tools in ways that align with academic integrity, professional ethics, and institutional policy."},
					{Code: "AR5", Text: "I feel prepared to explain and justify AI-assisted work to students, peers, or reviewers."},
					{Code: "AR6", Text: "If required today, I feel prepared to guide students in responsible AI use for engineering contexts."},
					{Code: "AR7", Text: "I know what professional development I need to improve my readiness to work with AI tools."},
					{Code: "AR8", Text: "I feel clear about institutional expectations and policies governing AI use."},
				},
			},
			{
				ID:   "CR",
				Name: "C2. Preparing Career-Ready Engineers (CR)",
				Items: []Item{
					{Code: "CR1", Text: "I design AI-related activities that connect to how AI is used in professional engineering practice."},
					{Code: "CR2", Text: "I help students develop portable AI competencies that will remain relevant as specific tools change."},
					{Code: "CR3", Text: "I prepare students to articulate and present their AI-assisted work to potential employers or supervisors."},
					{Code: "CR4", Text: "I am aware of what industry expects regarding AI competency in new engineering graduates."},
					{Code: "CR5", Text: "I help students develop evidence of AI-augmented engineering skills (e.g., project artifacts, portfolios, documented processes)."},
				},
			},
		},
	},
}
