package i18n

var defaultTranslations = map[Language]Translations{
	Portuguese: {
		Navigation: Navigation{
			Home:     "Início",
			Services: "Serviços",
			Projects: "Projetos",
			Contact:  "Contato",
		},
		Hero: Hero{
			Title:   "Abrindo as portas da sua marca para o mundo",
			Tagline: "Transformamos sua presença digital em resultados reais através de estratégias personalizadas e criativas.",
			CTA:     "Conheça nossos serviços",
		},
		Services: Services{
			Title:     "Nossos Serviços",
			ViewAll:   "Ver todos os serviços",
			ContactUs: "Entre em contato",
			SocialMedia: ServiceCopy{
				Title:       "Social Media",
				Description: "Estratégias completas para suas redes sociais, desde planejamento até análise de resultados.",
			},
			PaidTraffic: ServiceCopy{
				Title:       "Tráfego Pago",
				Description: "Campanhas de anúncios otimizadas para alcançar seu público-alvo e gerar resultados.",
			},
			WebDevelopment: ServiceCopy{
				Title:       "Desenvolvimento Web",
				Description: "Criação de sites e aplicativos personalizados com foco em experiência do usuário.",
			},
			Photography: ServiceCopy{
				Title:       "Fotografia",
				Description: "Produção visual profissional para valorizar sua marca e produtos.",
			},
		},
		Projects: Projects{
			Title:    "Projetos Realizados",
			Subtitle: "Conheça alguns dos nossos trabalhos de sucesso",
			ViewAll:  "Ver todos os projetos",
		},
		Testimonials: Testimonials{
			Title:    "Depoimentos",
			Subtitle: "O que nossos clientes dizem",
		},
		Contact: Contact{
			Title:    "Entre em Contato",
			Subtitle: "Estamos prontos para transformar sua marca",
			Form: ContactForm{
				Name:         "Nome",
				Email:        "E-mail",
				Subject:      "Assunto",
				Message:      "Mensagem",
				Send:         "Enviar mensagem",
				MessageSent:  "Mensagem enviada com sucesso!",
				MessageError: "Ocorreu um erro. Tente novamente.",
			},
		},
		Footer: Footer{
			Tagline:           "Abrindo as portas da sua marca para o mundo",
			QuickLinks:        "Links rápidos",
			AllRightsReserved: "Todos os direitos reservados",
			PrivacyPolicy:     "Política de Privacidade",
			TermsOfService:    "Termos de Uso",
		},
	},
	English: {
		Navigation: Navigation{
			Home:     "Home",
			Services: "Services",
			Projects: "Projects",
			Contact:  "Contact",
		},
		Hero: Hero{
			Title:   "Opening your brand's doors to the world",
			Tagline: "We transform your digital presence into real results through personalized and creative strategies.",
			CTA:     "Explore our services",
		},
		Services: Services{
			Title:     "Our Services",
			ViewAll:   "View all services",
			ContactUs: "Contact us",
			SocialMedia: ServiceCopy{
				Title:       "Social Media",
				Description: "Complete strategies for your social networks, from planning to results analysis.",
			},
			PaidTraffic: ServiceCopy{
				Title:       "Paid Traffic",
				Description: "Optimized ad campaigns to reach your target audience and generate results.",
			},
			WebDevelopment: ServiceCopy{
				Title:       "Web Development",
				Description: "Creation of custom websites and applications with a focus on user experience.",
			},
			Photography: ServiceCopy{
				Title:       "Photography",
				Description: "Professional visual production to enhance your brand and products.",
			},
		},
		Projects: Projects{
			Title:    "Completed Projects",
			Subtitle: "Discover some of our successful work",
			ViewAll:  "View all projects",
		},
		Testimonials: Testimonials{
			Title:    "Testimonials",
			Subtitle: "What our clients say",
		},
		Contact: Contact{
			Title:    "Contact Us",
			Subtitle: "We're ready to transform your brand",
			Form: ContactForm{
				Name:         "Name",
				Email:        "Email",
				Subject:      "Subject",
				Message:      "Message",
				Send:         "Send message",
				MessageSent:  "Message sent successfully!",
				MessageError: "An error occurred. Please try again.",
			},
		},
		Footer: Footer{
			Tagline:           "Opening your brand's doors to the world",
			QuickLinks:        "Quick Links",
			AllRightsReserved: "All rights reserved",
			PrivacyPolicy:     "Privacy Policy",
			TermsOfService:    "Terms of Service",
		},
	},
}

// Defaults returns a copy of the built-in tree for lang. Unknown languages
// get the Portuguese tree.
func Defaults(lang Language) Translations {
	if tree, ok := defaultTranslations[lang]; ok {
		return tree
	}
	return defaultTranslations[DefaultLanguage]
}
