package usecase

import "insighthub/internal/model"

// DefaultCatalog is the built-in catalog used when local storage holds nothing usable.
// A fresh value is returned on every call.
func DefaultCatalog() model.Catalog {
	return model.Catalog{
		{
			Title:       "Salesforce",
			Description: "Deep dives into CRM architecture, development, and administration.",
			SubCategories: []model.Subcategory{
				{
					Title: "Platform Developer I",
					Links: []model.Entry{
						{
							ID:          "sfdc-1",
							Title:       "Platform Development Basics",
							Description: "Fundamental concepts of the Force.com platform.",
							Content: "# Platform Development Basics\n\n" +
								"The Salesforce Platform (formerly Force.com) is a Platform as a Service (PaaS) that allows " +
								"developers to create multi-tenant add-on applications that integrate into the main Salesforce.com application.\n\n" +
								"### Key Concepts\n" +
								"- **Multi-tenancy**: Shared resources but isolated data.\n" +
								"- **Metadata-driven architecture**: Your customizations are stored as metadata.\n" +
								"- **APIs**: Everything is accessible via REST/SOAP.\n\n" +
								"### Core Skills\n" +
								"1. Understanding Objects and Fields\n" +
								"2. Security Model (OWD, Roles, Profiles)\n" +
								"3. Declarative vs. Programmatic logic.",
						},
						{
							ID:    "sfdc-2",
							Title: "Apex Triggers & Handlers",
							Content: "# Apex Triggers\n\n" +
								"Triggers are Apex code that executes before or after specific data manipulation language (DML) events occur.\n\n" +
								"### Trigger Syntax\n" +
								"```java\ntrigger TriggerName on ObjectName (trigger_events) {\n   // code_block\n}\n```\n\n" +
								"### Best Practices\n" +
								"- **One Trigger per Object**: Manage logic in a Handler class.\n" +
								"- **Bulkify**: Never put SOQL or DML inside loops.\n" +
								"- **Context Variables**: Use `Trigger.isInsert`, `Trigger.new`, etc.",
						},
					},
				},
			},
		},
		{
			Title:       "Machine Learning",
			Description: "Theoretical foundations and practical implementations of modern ML techniques.",
			SubCategories: []model.Subcategory{
				{
					Title: "Supervised Learning",
					Links: []model.Entry{
						{
							ID:    "ml-1",
							Title: "Linear & Logistic Regression",
							Content: "# Regression Analysis\n\n" +
								"Linear regression models the relationship between a dependent variable and one or more independent variables.\n\n" +
								"### The Equation\n" +
								"$Y = \\beta_0 + \\beta_1X + \\epsilon$\n\n" +
								"### Logistic Regression\n" +
								"Used for binary classification. It uses the sigmoid function to map values to probabilities between 0 and 1.",
						},
					},
				},
			},
		},
	}
}
