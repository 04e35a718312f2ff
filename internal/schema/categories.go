package schema

// Category Section D 的固定 AI 技术类别，九类，各组通用。
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

var categories = []Category{
	{"ML", "Machine Learning (ML)", "AI systems that learn patterns from data to make predictions or classifications."},
	{"DL", "Deep Learning (DL)", "A subset of machine learning using multi-layer neural networks to model complex relationships."},
	{"NLP", "Natural Language Processing (NLP)", "AI systems that analyze, understand, or generate human language."},
	{"CV", "Computer Vision (CV)", "AI systems that interpret and analyze visual information from images or video."},
	{"GenAI", "Generative AI Models", "AI systems that generate new content such as text, code, images, audio, or video."},
	{"Recommender", "Recommender and Decision Support Systems", "AI systems that suggest options or support decisions based on data analysis."},
	{"EngDesign", "Engineering Design, Simulation, and Digital Twins (AI-enabled)", "AI embedded in CAD/CAE, digital twins, and simulation workflows."},
	{"Robotics", "Robotics and Autonomous Systems", "AI integrated with physical systems to perceive, plan, and act in the real world."},
	{"Expert", "Expert / Rule-Based Systems", "AI systems that apply predefined rules or logic rather than learning from data."},
}

// Categories returns the nine fixed tool categories in presentation order.
func Categories() []Category {
	return categories
}

func ValidCategory(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// 各组可选工具清单略有差异。
var toolsByCategory = map[string]map[string][]string{
	"faculty": {
		"ML":          {"Scikit-learn", "TensorFlow / PyTorch", "MATLAB Machine Learning Toolbox", "R (caret / tidymodels)", "Google Colab / Jupyter (for ML)", "Azure Machine Learning", "Orange Data Mining"},
		"DL":          {"TensorFlow / Keras", "PyTorch", "ONNX", "MATLAB Deep Learning Toolbox"},
		"NLP":         {"ChatGPT", "Claude", "Google Gemini", "Google Vertex AI (LLMs)", "Azure OpenAI Service", "spaCy / NLTK", "BERT-based tools", "Grammarly"},
		"CV":          {"OpenCV", "YOLO", "TensorFlow Vision Models", "MATLAB Computer Vision Toolbox", "ImageJ / Fiji"},
		"GenAI":       {"ChatGPT", "Claude", "Google Gemini", "GitHub Copilot", "DALL·E / Stable Diffusion / Midjourney"},
		"Recommender": {"IBM Watson", "Azure AI Services", "Google Recommendation AI", "Learning analytics platforms (e.g., LMS-embedded)", "Adaptive learning systems"},
		"EngDesign":   {"ANSYS (AI/ML features)", "Autodesk Fusion (AI features)", "Siemens NX (AI features)", "MATLAB/Simulink AI tools", "Digital twin platforms"},
		"Robotics":    {"ROS / ROS2", "Gazebo", "NVIDIA Isaac", "TurtleBot", "PX4 Autopilot", "Educational platforms (e.g., LEGO, VEX, Arduino AI kits)"},
		"Expert":      {"Drools", "CLIPS", "Prolog-based systems", "Rules engines used in coursework"},
	},
	"student": {
		"ML":          {"Scikit-learn", "TensorFlow / PyTorch", "MATLAB Machine Learning Toolbox", "Google Colab / Jupyter (for ML)", "Orange Data Mining", "Weka / RapidMiner"},
		"DL":          {"TensorFlow / Keras", "PyTorch", "MATLAB Deep Learning Toolbox", "Google Colab / Jupyter (for DL)"},
		"NLP":         {"ChatGPT", "Claude", "Google Gemini", "Google Vertex AI (LLMs)", "Grammarly", "spaCy / NLTK", "BERT-based tools"},
		"CV":          {"OpenCV", "YOLO", "TensorFlow Vision Models", "MATLAB Computer Vision Toolbox", "ImageJ / Fiji"},
		"GenAI":       {"ChatGPT", "Claude", "Google Gemini", "GitHub Copilot", "DALL·E / Stable Diffusion / Midjourney"},
		"Recommender": {"IBM Watson", "Azure AI Services", "Google Recommendation AI"},
		"EngDesign":   {"ANSYS (AI/ML features)", "Autodesk Fusion (AI features)", "Siemens NX (AI features)", "MATLAB/Simulink AI tools", "Digital twin platforms"},
		"Robotics":    {"ROS / ROS2", "Gazebo", "NVIDIA Isaac", "TurtleBot", "PX4 Autopilot", "Educational platforms (e.g., LEGO, VEX, Arduino AI kits)"},
		"Expert":      {"CLIPS", "Prolog-based systems", "Rules engines used in coursework"},
	},
	"practitioner": {
		"ML":          {"Scikit-learn", "TensorFlow / PyTorch", "MATLAB Machine Learning Toolbox", "SAS", "Azure Machine Learning", "DataRobot / H2O.ai"},
		"DL":          {"TensorFlow / Keras", "PyTorch", "ONNX", "MATLAB Deep Learning Toolbox"},
		"NLP":         {"ChatGPT (Enterprise)", "Claude (Enterprise)", "Google Gemini (Enterprise)", "Azure OpenAI Service", "Amazon Bedrock", "Google Vertex AI (LLMs)", "spaCy", "BERT-based systems"},
		"CV":          {"OpenCV", "YOLO", "TensorFlow Vision Models", "MATLAB Computer Vision Toolbox", "ImageJ / Fiji", "Cognex Vision", "NVIDIA Metropolis"},
		"GenAI":       {"ChatGPT (Enterprise)", "Claude (Enterprise)", "Google Gemini (Enterprise)", "GitHub Copilot (Enterprise)", "DALL·E / Stable Diffusion / Midjourney (Enterprise)"},
		"Recommender": {"IBM Watson", "Azure AI Services", "Salesforce Einstein", "SAP AI", "ServiceNow AI"},
		"EngDesign":   {"ANSYS (AI/ML features)", "Autodesk Fusion (AI features)", "Siemens NX / Teamcenter (AI features)", "Dassault Systèmes (AI features)", "MATLAB/Simulink AI tools", "Digital twin platforms (e.g., Azure Digital Twins)"},
		"Robotics":    {"ROS / ROS2", "Gazebo", "NVIDIA Isaac", "PX4 Autopilot", "Industrial robot AI controllers", "Autonomous inspection platforms"},
		"Expert":      {"Drools", "CLIPS", "Prolog-based systems", "Rules engines embedded in PLM/ERP"},
	},
}

var gateQuestion = map[string]string{
	"faculty":      "Have you used or incorporated tools in this category?",
	"student":      "Have you used tools in this category in your engineering learning activities?",
	"practitioner": "Are new graduates or early-career engineers expected to use tools in this category?",
}

var gateInstruction = map[string]string{
	"faculty":      "For each AI category below, indicate whether you have used or incorporated tools in this category in your teaching, research, or assessment activities. If yes, select which tools apply.",
	"student":      "For each AI category below, indicate whether you have used tools in this category in your engineering coursework, labs, or projects. If yes, select which tools apply.",
	"practitioner": "For each AI category below, indicate whether new graduates or early-career engineers are expected to use tools in this category in your professional context. If yes, select commonly expected tools.",
}

// CategoryWithTools 定义端点返回给前端的形状。
type CategoryWithTools struct {
	Category
	Tools []string `json:"tools"`
}

type ToolUsageSection struct {
	Question    string              `json:"question"`
	Instruction string              `json:"instruction"`
	Categories  []CategoryWithTools `json:"categories"`
}

// ToolUsageSectionFor assembles the Section D definition for one group.
func ToolUsageSectionFor(group string) (ToolUsageSection, bool) {
	tools, ok := toolsByCategory[group]
	if !ok {
		return ToolUsageSection{}, false
	}
	out := ToolUsageSection{
		Question:    gateQuestion[group],
		Instruction: gateInstruction[group],
		Categories:  make([]CategoryWithTools, 0, len(categories)),
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, CategoryWithTools{Category: c, Tools: tools[c.ID]})
	}
	return out, true
}
