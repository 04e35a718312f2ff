package schema

var practitionerSections = []Section{
	{
		Key:         "A",
		Title:       "Section A: Perceived Value and Usability of AI in Engineering Practice",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "PU-L",
				Name: "A1. Perceived Usefulness—Engineering Practice (PU-L)",
				Items: []Item{
					{Code: "PU-L1", Text: "AI tools improve the quality of engineering work expected of new graduates or early-career engineers."},
					{Code: "PU-L2", Text: "AI tools enable engineering activities that would be difficult or impractical without AI (e.g., large-scale data analysis, design optimization, rapid prototyping)."},
					{Code: "PU-L3", Text: "AI tools enhance the ability to address complex, multidisciplinary engineering problems in practice."},
					{Code: "PU-L4", Text: "AI tools support engineers in making better-informed decisions by surfacing options, tradeoffs, or patterns."},
				},
			},
			{
				ID:   "PU-E",
				Name: "A2. Perceived Usefulness—Efficiency (PU-E)",
				Items: []Item{
					{Code: "PU-E1", Text: "AI tools increase efficiency in professional engineering practice."},
					{Code: "PU-E2", Text: "Efficiency gains from AI tools allow engineers to spend more time on judgment-intensive tasks such as verification, design review, and client interaction."},
				},
			},
			{
				ID:   "PEU",
				Name: "A3. Perceived Ease of Organizational Integration (PEU)",
				Items: []Item{
					{Code: "PEU1", Text: "AI tools are sufficiently usable for new graduates or early-career engineers to apply effectively in typical workflows."},
					{Code: "PEU2", Text: "Organizational guidance and policies make it clear how and when AI tools should be used in engineering work."},
					{Code: "PEU3", Text: "New graduates or early-career engineers can use AI tools effectively without excessive additional training."},
				},
			},
			{
				ID:   "EJ",
				Name: "A4. Epistemic Judgment (EJ)",
				Items: []Item{
					{Code: "EJ1", Text: "New graduates or early-career engineers can recognize when AI outputs conflict with engineering principles or standards."},
					{Code: "EJ2", Text: "New graduates or early-career engineers know when AI-assisted outputs require verification using engineering methods."},
					{Code: "EJ3", Text: "New graduates or early-career engineers are appropriately cautious about relying on AI outputs without validation."},
				},
			},
			{
				ID:   "BI",
				Name: "A5. Behavioral Expectation (BI)",
				Items: []Item{
					{Code: "BI1", Text: "AI tool use will be increasingly expected of engineering graduates in professional practice."},
					{Code: "BI2", Text: "I expect AI tool use to increase across engineering roles in the near future."},
					{Code: "BI3", Text: "I would recommend that engineering programs prepare students for appropriate and responsible AI tool use."},
				},
			},
		},
	},
	{
		Key:         "B",
		Title:       "Section B: Workplace AI Practices, Judgment, and Accountability in Engineering",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "MU",
				Name: "B1. Modes of AI Use in Practice (MU)",
				Items: []Item{
					{Code: "MU1", Text: "Engineering graduates use AI tools to augment their reasoning (e.g., exploring options, testing assumptions) rather than to replace it."},
					{Code: "MU2", Text: "Engineering graduates use AI tools for design exploration, trade-off analysis, or “what-if” evaluation."},
					{Code: "MU3", Text: "Engineering graduates use AI tools to critique, compare, or refine their own work or the work of their teams."},
					{Code: "MU4", Text: "Engineering graduates avoid using AI tools in ways that bypass professional engineering judgment."},
				},
			},
			{
				ID:   "LP",
				Name: "B2. Timing and Workflow Integration (LP)",
				Items: []Item{
					{Code: "LP1", Text: "Engineering graduates apply their own analysis or reasoning before incorporating AI-generated outputs."},
					{Code: "LP2", Text: "Engineering graduates use AI tools after initial engineering analysis to refine, test, or challenge their conclusions."},
					{Code: "LP3", Text: "Engineering graduates recognize when AI tools are not appropriate for specific engineering tasks."},
				},
			},
			{
				ID:   "GB",
				Name: "B3. Organizational Guardrails and Governance (GB)",
				Items: []Item{
					{Code: "GB1", Text: "My organization has clear policies defining appropriate and inappropriate uses of AI tools in engineering work."},
					{Code: "GB2", Text: "Engineering workflows in my organization include checks that prevent AI tools from replacing critical engineering judgment."},
					{Code: "GB3", Text: "Documentation and audit trail requirements exist for AI-assisted engineering decisions."},
				},
			},
			{
				ID:   "OA",
				Name: "B4. Professional Ownership and Accountability (OA)",
				Items: []Item{
					{Code: "OA1", Text: "Engineering graduates can clearly explain their own contribution versus AI assistance in their work."},
					{Code: "OA2", Text: "Engineering graduates can defend AI-assisted decisions to colleagues, clients, or regulators using engineering principles."},
					{Code: "OA3", Text: "Engineering graduates take full professional responsibility for the correctness and quality of AI-assisted work."},
					{Code: "OA4", Text: "Engineering graduates understand when and how to disclose AI use in professional deliverables."},
				},
			},
			{
				ID:   "EV",
				Name: "B5. Evaluation and Verification (EV)",
				Items: []Item{
					{Code: "EV1", Text: "Engineering graduates test and verify AI-assisted code, models, or analyses using appropriate engineering methods."},
					{Code: "EV2", Text: "Engineering graduates check AI outputs against known constraints, standards, or physical principles."},
					{Code: "EV3", Text: "My organization values engineers who demonstrate sound reasoning and verification, not just rapid output."},
				},
			},
			{
				ID:   "ET",
				Name: "B6. Ethics and Responsible Use (ET)",
				Items: []Item{
					{Code: "ET1", Text: "Engineering graduates are aware that AI outputs may reflect bias from training data or design choices."},
					{Code: "ET2", Text: "Engineering graduates understand what information (e.g., proprietary, sensitive, or regulated data) should not be entered into AI tools."},
					{Code: "ET3", Text: "Engineering graduates understand when and how to disclose AI use in professional engineering contexts."},
					{Code: "ET4", Text: "Engineering graduates consider the ethical implications of AI-assisted engineering decisions."},
				},
			},
		},
	},
	{
		Key:         "C",
		Title:       "Section C: AI Readiness for AI-Integrated Engineering Practice (AR / CR)",
		Instruction: "Please indicate your level of agreement with each statement using the scale below.",
		Constructs: []Construct{
			{
				ID:   "AR",
				Name: "C1. Graduate AI Readiness (AR)",
				Items: []Item{
					{Code: "AR1", Text: "Engineering graduates are prepared to use AI tools appropriately in entry-level engineering roles."},
					{Code: "AR2", Text: "Engineering graduates can determine when AI tools add value versus when traditional engineering approaches are more appropriate."},
					{Code: "AR3", Text: "Engineering graduates are prepared to verify and validate AI-assisted outputs using engineering standards and practices."},
					{Code: "AR4", Text: "Engineering graduates are prepared to use AI tools in ways that align with professional ethics, regulations, and organizational policy."},
					{Code: "AR5", Text: "Engineering graduates are prepared to explain and justify AI-assisted decisions or outputs to colleagues, clients, or regulators."},
					{Code: "AR6", Text: "If required today, engineering graduates are ready to deploy AI tools responsibly in professional engineering settings."},
					{Code: "AR7", Text: "Engineering graduates know what skills or training they need to improve their readiness to work with AI tools."},
					{Code: "AR8", Text: "Engineering graduates understand organizational expectations or governance related to AI use."},
				},
			},
			{
				ID:   "CR",
				Name: "C2. Graduate Workforce Preparedness (CR)",
				Items: []Item{
					{Code: "CR1", Text: "Engineering graduates can demonstrate AI competency during the hiring process (e.g., interviews, work samples, portfolios)."},
					{Code: "CR2", Text: "Engineering graduates possess AI skills that are transferable across tools and platforms, not limited to specific software."},
					{Code: "CR3", Text: "Engineering graduates can articulate how their AI use adds value in a professional context."},
					{Code: "CR4", Text: "My organization considers AI competency when evaluating new engineering graduates for hiring or advancement."},
					{Code: "CR5", Text: "Engineering graduates are prepared to adapt to new AI tools and workflows as they emerge in practice."},
				},
			},
		},
	},
}
